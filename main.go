package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/Crimone/Scoparia/dal"
	"github.com/Crimone/Scoparia/logic"
	"github.com/Crimone/Scoparia/server"
	"github.com/Crimone/Scoparia/shared"
	"github.com/Crimone/Scoparia/texts"
	"github.com/Crimone/Scoparia/wikidot"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			shared.NewUserAgent,
			logic.NewMetrics,
			logic.NewWatermarkStore,
			logic.NewThreadResolver,
			logic.NewPostResolver,
			logic.NewCromClient,
			logic.NewPageAuthorResolver,
			logic.NewRecipientResolver,
			logic.NewAggregator,
			logic.NewBlockedUsers,
			logic.NewProfiler,
			logic.NewEmailSender,
			logic.NewPushSender,
			logic.NewChannelDispatcher,
			logic.NewCycleOrchestrator,
			logic.NewSyncService,
			wikidot.NewClient,
			wikidot.NewFeedSource,
			texts.NewTexts,
			dal.NewRepo,
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			func(*http.Server) {},
			func(logic.IProfiler) {},
			runService,
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics, client wikidot.IClient) {
	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Printf("Application starting up")
				if err := client.Login(ctx); err != nil {
					return fmt.Errorf("wikidot login failed: %w", err)
				}
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Printf("Application shutting down")
				client.Logout(ctx)
				return nil
			},
		},
	)
}

// runService wires the recurring work. With a cron schedule configured
// the service keeps running and polls on schedule; without one it runs
// a single cycle and asks fx to shut the process down.
func runService(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *shared.Config,
	syncer logic.ISyncService,
	orchestrator logic.ICycleOrchestrator,
) {
	runOnce := func(ctx context.Context) {
		if err := syncer.SyncContacts(ctx); err != nil {
			logger.Errorf("Contacts sync failed: %v", err)
		}
		if err := syncer.SyncUserConfigs(ctx); err != nil {
			logger.Errorf("User config sync failed: %v", err)
		}
		if err := orchestrator.RunCycle(ctx); err != nil {
			logger.Errorf("Notification cycle failed: %v", err)
		}
	}

	if cfg.CycleSchedule == "" {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					runOnce(context.Background())
					_ = shutdowner.Shutdown()
				}()
				return nil
			},
		})
		return
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(cfg.CycleSchedule, func() {
		runOnce(context.Background())
	})
	if err != nil {
		log.Fatal(fmt.Sprintf("Invalid cycle schedule '%s': %v", cfg.CycleSchedule, err))
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Printf("Scheduling cycles: %s", cfg.CycleSchedule)
			scheduler.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
