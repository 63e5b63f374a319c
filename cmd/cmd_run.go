package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/internal/config"
	"github.com/gaze-network/realpay-receipts/modules/receipts"
	"github.com/gaze-network/realpay-receipts/pkg/automaxprocs"
	"github.com/gaze-network/realpay-receipts/pkg/errorhandler"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestcontext"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestlogger"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed(string(common.ModuleReceipts), receipts.New),
)

type runCmdOptions struct {
	Port int
}

func NewRunCommand() *cobra.Command {
	opts := &runCmdOptions{}

	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start realpay receipt registry service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(opts, cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.IntVar(&opts.Port, "port", 0, "HTTP server port, overrides `http_server.port`")

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(opts *runCmdOptions, cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	if opts.Port > 0 {
		conf.HTTPServer.Port = opts.Port
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize reporting client
	do.Provide(injector, func(i do.Injector) (*reportingclient.ReportingClient, error) {
		conf := do.MustInvoke[config.Config](i)
		if conf.Reporting.Disabled {
			return nil, nil
		}

		reportingClient, err := reportingclient.New(conf.Reporting)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "invalid reporting configuration")
			}
			return nil, errors.Wrap(err, "can't create reporting client")
		}
		return reportingClient, nil
	})

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		clientIP, err := requestcontext.WithClientIP(conf.HTTPServer.RequestIP)
		if err != nil {
			return nil, errors.Wrap(err, "invalid http_server.request_ip configuration")
		}

		app := fiber.New(fiber.Config{
			AppName:      "RealPay Receipts",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestID(),
				clientIP,
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		return app, nil
	})

	// Initialize modules
	if _, err := do.InvokeNamed[*receipts.Module](injector, string(common.ModuleReceipts)); err != nil {
		return errors.Wrapf(err, "can't init module %q", common.ModuleReceipts)
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "RealPay receipt registry started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "Failed to shutdown HTTP server", slogx.Error(err))
	}
	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
