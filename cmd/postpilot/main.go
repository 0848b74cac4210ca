package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/postpilot/postpilot/pkg/config"
	"github.com/postpilot/postpilot/pkg/domain"
	"github.com/postpilot/postpilot/pkg/generator"
	"github.com/postpilot/postpilot/pkg/memory"
	"github.com/postpilot/postpilot/pkg/queue"
	"github.com/postpilot/postpilot/pkg/repository"
	"github.com/postpilot/postpilot/pkg/scheduler"
	"github.com/postpilot/postpilot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Generator.APIKey)
	log.Printf("[INFO] starting postpilot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires the lifecycle components and blocks until the context cancels
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	mem := memory.New()
	gen := generator.New(cfg.GetGeneratorConfig(), cfg.GetProfileConfig())

	reviewQueue := queue.New(queue.Config{
		Store:       repos.Content,
		Regenerator: gen,
		AvoidLister: mem,
		AvoidRecent: cfg.Generator.AvoidRecent,
	})

	autopilot := scheduler.NewAutoPilot(scheduler.AutoPilotConfig{
		Generator:   gen,
		Stager:      reviewQueue,
		Content:     repos.Content,
		State:       repos.State,
		Memory:      mem,
		RetryDelay:  cfg.AutoPilot.RetryDelay,
		AvoidRecent: cfg.Generator.AvoidRecent,
		Defaults:    autopilotDefaults(cfg),
	})
	if err := autopilot.Load(ctx); err != nil {
		return fmt.Errorf("load autopilot state: %w", err)
	}

	dispatcher := scheduler.NewDispatcher(scheduler.DispatcherConfig{
		Content:     repos.Content,
		Connections: repos.Connection,
		Publisher:   scheduler.NewWebhookPublisher(cfg.Dispatch.Webhooks, cfg.Dispatch.Timeout),
		MaxRetries:  cfg.Dispatch.MaxRetries,
		MaxWorkers:  cfg.Dispatch.MaxWorkers,
	})

	sched := scheduler.NewScheduler(autopilot, dispatcher, scheduler.Config{
		TickInterval: cfg.AutoPilot.TickInterval,
		PollInterval: cfg.Dispatch.PollInterval,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Config:      cfg,
		AutoPilot:   autopilot,
		Queue:       reviewQueue,
		Content:     repos.Content,
		Connections: repos.Connection,
		Dispatch:    dispatcher,
		Memory:      mem,
		State:       repos.State,
		Version:     revision,
		Debug:       debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// autopilotDefaults seeds the autopilot state from config; persisted state
// loaded afterwards wins over these
func autopilotDefaults(cfg *config.Config) domain.AutoPilotState {
	frequency := make(map[domain.Platform]int, len(cfg.AutoPilot.PostingFrequency))
	for platform, count := range cfg.AutoPilot.PostingFrequency {
		frequency[domain.Platform(platform)] = count
	}

	return domain.AutoPilotState{
		Cadence:          domain.Cadence(cfg.AutoPilot.Cadence),
		PostingFrequency: frequency,
		AutoApprove:      cfg.AutoPilot.AutoApprove,
		IntervalHours:    cfg.AutoPilot.IntervalHours,
	}
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
