package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/flyfox-ai/funnel/internal/config"
	"github.com/flyfox-ai/funnel/internal/infra/database"
	"github.com/flyfox-ai/funnel/internal/infra/http/handlers"
	"github.com/flyfox-ai/funnel/internal/infra/http/middleware"
	"github.com/flyfox-ai/funnel/internal/infra/mail"
	"github.com/flyfox-ai/funnel/internal/infra/payment"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
	"github.com/flyfox-ai/funnel/internal/infra/worker"
	"github.com/flyfox-ai/funnel/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	trialRepo := database.NewTrialRepository(db)
	conversionRepo := database.NewConversionRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	sessionRepo := database.NewSessionRepository(db)
	activityRepo := database.NewActivityRepository(db)

	// 2. Collaborators
	var mailSender *mail.EmailSender
	if cfg.MailConfigured() {
		mailSender = mail.NewEmailSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
			cfg.MailFrom, cfg.MailFromName,
		)
	}

	var gateway usecase.PaymentGateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeClient(cfg.StripeSecretKey)
	}

	// Email delivery goes through RabbitMQ when available so failures land
	// in the DLQ for retry; otherwise fall back to direct fire-and-forget.
	var notifier usecase.NotificationProducer
	var rabbitMQ *queue.RabbitMQ
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Close()

		notifier = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if mailSender != nil {
			notificationWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go notificationWorker.Start(queue.QueueName)
		}
	} else if mailSender != nil {
		notifier = mail.NewDirectNotifier(mailSender)
	}

	// 3. Background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expirationWorker := worker.NewTrialExpirationWorker(db)
	go expirationWorker.Start(ctx)

	// 4. Use cases
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, activityRepo, notifier)
	statusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, activityRepo)
	detailUC := usecase.NewGetLeadUseCase(leadRepo, trialRepo, activityRepo)
	scoreUC := usecase.NewScoreLeadUseCase(leadRepo)
	followUpUC := usecase.NewSendFollowUpUseCase(leadRepo, activityRepo, notifier)
	createTrialUC := usecase.NewCreateTrialUseCase(leadRepo, trialRepo, activityRepo, notifier)
	trackConversionUC := usecase.NewTrackConversionUseCase(leadRepo, conversionRepo, customerRepo, gateway, notifier)
	analyticsUC := usecase.NewAnalyticsUseCase(conversionRepo)
	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, gateway)
	authUC := usecase.NewAuthenticateUseCase(customerRepo, sessionRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, statusUC, detailUC, scoreUC, followUpUC)
	trialHandler := handlers.NewTrialHandler(createTrialUC)
	conversionHandler := handlers.NewConversionHandler(trackConversionUC, analyticsUC)
	accountHandler := handlers.NewAccountHandler(registerUC, authUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.StripeSecretKey != "")

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Post("/leads", leadHandler.Capture)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Patch("/leads/{id}/status", leadHandler.UpdateStatus)
	r.Get("/leads/{id}/score", leadHandler.Score)
	r.Post("/leads/{id}/qualify", leadHandler.Qualify)
	r.Post("/leads/{id}/follow-up", leadHandler.FollowUp)
	r.Post("/trials", trialHandler.Create)
	r.Post("/conversions", conversionHandler.Track)
	r.Get("/analytics", conversionHandler.Analytics)
	r.Post("/customers/register", accountHandler.Register)
	r.Post("/customers/login", accountHandler.Login)
	r.Post("/customers/logout", accountHandler.Logout)
	r.Get("/customers/me", accountHandler.Me)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("funnel API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
