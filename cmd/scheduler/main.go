package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"conectapro/config"
	"conectapro/di"
	"conectapro/shared/logger"
	"conectapro/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	// "scheduler once" runs a single sweep, for platforms that bring their own cron.
	once := len(os.Args) > 1 && os.Args[1] == "once"

	if !once && !cfg.Scheduler.Enable {
		log.Warn().Msg("Scheduler is disabled, set SCHEDULER_ENABLE=true to run the completion job")

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := di.InitializeCompletionJob()

	if once {
		summary, err := job.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Completion job failed")
			stop()
			os.Exit(1)
		}

		log.Info().Interface("summary", summary).Msg("Completion sweep finished")

		return
	}

	scheduler := cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithLogger(logger.CronLogger{}),
		cron.WithChain(cron.Recover(logger.CronLogger{}), cron.SkipIfStillRunning(logger.CronLogger{})),
	)

	_, err := scheduler.AddFunc(cfg.Scheduler.CompletionSpec, func() {
		if _, err := job.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Completion job failed")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Str("spec", cfg.Scheduler.CompletionSpec).Msg("Invalid completion schedule")
	}

	scheduler.Start()

	log.Info().Str("spec", cfg.Scheduler.CompletionSpec).Msg("Scheduler started.")

	<-ctx.Done()

	log.Info().Msg("Received SIGTERM. Waiting for running jobs.")

	<-scheduler.Stop().Done()

	log.Info().Msg("Scheduler stopped.")
}
