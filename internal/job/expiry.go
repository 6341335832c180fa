package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const expiryTimeout = time.Minute

type Expirer interface {
	ExpireOverdue(ctx context.Context) (int64, error)
}

// ExpiryJob periodically flips overdue ACTIVE contracts to EXPIRED.
type ExpiryJob struct {
	cron    *cron.Cron
	expirer Expirer
	log     zerolog.Logger
}

// NewExpiryJob schedules the job with a standard five-field cron expression.
func NewExpiryJob(schedule string, expirer Expirer, log zerolog.Logger) (*ExpiryJob, error) {
	j := &ExpiryJob{
		cron:    cron.New(),
		expirer: expirer,
		log:     log.With().Str("job", "contract-expiry").Logger(),
	}
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *ExpiryJob) Start() {
	j.cron.Start()
	j.log.Info().Msg("expiry job scheduled")
}

// Stop waits for a running expiry pass to finish or ctx to end.
func (j *ExpiryJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (j *ExpiryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), expiryTimeout)
	defer cancel()

	rows, err := j.expirer.ExpireOverdue(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("expire overdue contracts")
		return
	}
	j.log.Info().Int64("expired", rows).Msg("overdue contracts expired")
}
