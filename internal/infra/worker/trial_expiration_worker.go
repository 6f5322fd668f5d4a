package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// TrialExpirationWorker sweeps active trials past their end date. Reads also
// expire lazily; the sweep catches trials nobody is reading. Both paths use
// the same conditional UPDATE so they never double-fire.
type TrialExpirationWorker struct {
	db           *sql.DB
	tickInterval time.Duration
}

func NewTrialExpirationWorker(db *sql.DB) *TrialExpirationWorker {
	return &TrialExpirationWorker{
		db:           db,
		tickInterval: time.Minute,
	}
}

func (w *TrialExpirationWorker) Start(ctx context.Context) {
	log.Println("trial expiration worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireDueTrials(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("trial expiration worker stopped")
			return
		case <-ticker.C:
			w.expireDueTrials(ctx)
		}
	}
}

func (w *TrialExpirationWorker) expireDueTrials(ctx context.Context) {
	query := `
		UPDATE trials
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND end_date < NOW()
		RETURNING id, lead_id, end_date
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("trial expiration sweep failed: %v", err)
		return
	}
	defer rows.Close()

	expired := 0
	for rows.Next() {
		var trialID, leadID string
		var endDate time.Time

		if err := rows.Scan(&trialID, &leadID, &endDate); err != nil {
			log.Printf("failed to scan expired trial: %v", err)
			continue
		}

		log.Printf("trial expired: trial=%s lead=%s overdue=%s",
			trialID, leadID, time.Since(endDate).Round(time.Minute))
		expired++
	}

	if expired > 0 {
		log.Printf("%d trial(s) marked expired", expired)
	}
}
