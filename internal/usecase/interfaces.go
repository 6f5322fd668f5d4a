package usecase

import (
	"context"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	// Upsert inserts the lead or, when the email already exists, merges the
	// supplied non-empty fields into the existing row. Reports whether a new
	// row was created and loads the stored state back into lead.
	Upsert(ctx context.Context, lead *entity.Lead) (created bool, err error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	// TransitionStatus flips the status only if the row still holds `from`,
	// so two concurrent updates cannot both win. Returns
	// entity.ErrInvalidLeadTransition when the guard fails.
	TransitionStatus(ctx context.Context, id, from, to, notes string) error
	UpdateScore(ctx context.Context, id string, score int) error
}

type TrialRepositoryInterface interface {
	// Create relies on the partial unique index on (lead_id) WHERE
	// status='active': a second active trial surfaces as
	// entity.ErrActiveTrialExists, never as a duplicate row.
	Create(ctx context.Context, trial *entity.Trial) error
	// FindByID applies lazy expiry before returning: an active trial past its
	// end date is flipped to expired with a conditional UPDATE.
	FindByID(ctx context.Context, id string) (*entity.Trial, error)
	FindLatestByLeadID(ctx context.Context, leadID string) (*entity.Trial, error)
}

type ConversionRepositoryInterface interface {
	// Track runs the whole conversion in one database transaction: guard the
	// lead status, mark lead and trial converted, insert the conversion row
	// and the audit activity.
	Track(ctx context.Context, conv *entity.Conversion, activity *entity.SalesActivity) error
	Analytics(ctx context.Context) (*entity.ConversionAnalytics, error)
}

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Customer) error
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	SetGatewayCustomerID(ctx context.Context, id, gatewayID string) error
}

type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *entity.Session) error
	FindByToken(ctx context.Context, token string) (*entity.Session, error)
	// Revoke is idempotent; revoking an already revoked token is not an error.
	Revoke(ctx context.Context, token string) error
}

type ActivityRepositoryInterface interface {
	Append(ctx context.Context, a *entity.SalesActivity) error
	ListByLeadID(ctx context.Context, leadID string, limit int) ([]*entity.SalesActivity, error)
}

// PaymentGateway is the external billing collaborator. The funnel records
// conversions; it never owns payment state.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateCharge(ctx context.Context, amountCents int64, currency, gatewayCustomerID string) (string, error)
}

// NotificationProducer hands an email job to the out-of-band delivery
// pipeline. Publish failures never fail the state transition that
// triggered them.
type NotificationProducer interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
