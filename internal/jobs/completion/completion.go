// Package completion closes out service requests whose scheduled date has passed.
package completion

import (
	"context"
	"fmt"

	"conectapro/config"
	"conectapro/infras/otel"
	srService "conectapro/internal/domains/servicerequest/service"
	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/shared/metrics"
	"conectapro/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Summary counts the outcome of one run.
type Summary struct {
	Due       int
	Completed int
	Skipped   int
	Failed    int
}

type Job struct {
	requests srService.ServiceRequest
	metrics  *metrics.Metrics
	otel     otel.Otel
	batch    int
	actor    string
}

func New(cfg *config.Config, requests srService.ServiceRequest, metrics *metrics.Metrics, otel otel.Otel) *Job {
	return &Job{
		requests: requests,
		metrics:  metrics,
		otel:     otel,
		batch:    cfg.Scheduler.CompletionBatch,
		actor:    cfg.Scheduler.CompletionActor,
	}
}

// Run marks every due request completed. A request that moved out of a completable
// status since it was listed is skipped; other failures are counted and the run goes on.
func (j *Job) Run(ctx context.Context) (summary Summary, err error) {
	ctx, scope := j.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".Completion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if j.actor != "" {
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, j.actor)
	}

	ids, err := j.requests.ListDue(ctx, timezone.Now(), j.batch)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due service requests")

		return summary, fmt.Errorf("failed to list due service requests: %w", err)
	}

	summary.Due = len(ids)

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}

		_, err := j.requests.MarkCompleted(ctx, id)
		j.metrics.IncCompletion(metrics.Result(err, failure.IsFailure))

		switch {
		case err == nil:
			summary.Completed++
		case failure.IsFailure(err):
			summary.Skipped++
			log.Warn().Err(err).Str("request_id", id).Msg("skipped service request completion")
		default:
			summary.Failed++
			log.Error().Err(err).Str("request_id", id).Msg("failed to complete service request")
		}
	}

	scope.SetAttributes(map[string]any{
		"due":       summary.Due,
		"completed": summary.Completed,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	})

	log.Info().
		Int("due", summary.Due).
		Int("completed", summary.Completed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("completion run finished")

	return summary, nil
}
