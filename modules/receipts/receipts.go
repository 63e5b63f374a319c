package receipts

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/internal/config"
	"github.com/gaze-network/realpay-receipts/internal/postgres"
	receiptsapi "github.com/gaze-network/realpay-receipts/modules/receipts/api"
	receiptsconfig "github.com/gaze-network/realpay-receipts/modules/receipts/config"
	"github.com/gaze-network/realpay-receipts/modules/receipts/contract"
	receiptsdatagateway "github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/exporter"
	receiptsmemory "github.com/gaze-network/realpay-receipts/modules/receipts/repository/memory"
	receiptspostgres "github.com/gaze-network/realpay-receipts/modules/receipts/repository/postgres"
	receiptsusecase "github.com/gaze-network/realpay-receipts/modules/receipts/usecase"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

// Module is a running receipt registry instance.
type Module struct {
	Host     *host.Host[receiptsdatagateway.ReceiptsDataGateway]
	Usecase  *receiptsusecase.Usecase
	Exporter *exporter.Exporter

	cleanupFuncs []func(context.Context) error
}

// Open connects the configured storage, attaches to (or creates) the contract instance
// and wires the event sinks. reportingClient may be nil.
func Open(ctx context.Context, conf receiptsconfig.Config, reportingClient *reportingclient.ReportingClient) (*Module, error) {
	ctx = logger.WithContext(ctx, slogx.String("module", "receipts"))

	var receiptsDg receiptsdatagateway.ReceiptsDataGateway
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Database) {
	case "memory", "":
		logger.WarnContext(ctx, "Receipts are kept in memory and will be lost on exit")
		receiptsDg = receiptsmemory.NewRepository()
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for receipts")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		receiptsDg = receiptspostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for receipts is not supported", conf.Database)
	}

	recent := eventlog.NewMemorySink(conf.RecentCapacity)
	sinks := eventlog.MultiSink{eventlog.LoggerSink{}, recent}
	if reportingClient != nil {
		reportingSink := eventlog.NewReportingSink(reportingClient, eventlog.DefaultReportingQueueSize)
		sinks = append(sinks, reportingSink)
		cleanupFuncs = append(cleanupFuncs, func(context.Context) error {
			return reportingSink.Close()
		})
	}

	h := host.New[receiptsdatagateway.ReceiptsDataGateway](
		contract.New(),
		contract.NewStateStore(receiptsDg, DBVersion),
		sinks,
		host.WithVersion(Version),
	)
	if err := h.Init(ctx); err != nil {
		for _, cleanup := range cleanupFuncs {
			_ = cleanup(ctx)
		}
		return nil, errors.Wrap(err, "failed to initialize receipt registry")
	}

	return &Module{
		Host:         h,
		Usecase:      receiptsusecase.New(receiptsDg, h, recent),
		Exporter:     exporter.New(receiptsDg, exporter.DefaultPageSize),
		cleanupFuncs: cleanupFuncs,
	}, nil
}

// New is the module provider used by the run command. It mounts the configured API handlers.
func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	reportingClient := do.MustInvoke[*reportingclient.ReportingClient](injector)

	module, err := Open(ctx, conf.Modules.Receipts, reportingClient)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ctx = logger.WithContext(ctx, slogx.String("module", "receipts"))

	// Mount API
	apiHandlers := lo.Uniq(conf.Modules.Receipts.APIHandlers)
	for _, handler := range apiHandlers {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			receiptsHTTPHandler := receiptsapi.NewHTTPHandler(module.Usecase, conf.Modules.Receipts.TokenDecimals)
			if err := receiptsHTTPHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount Receipts API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	if reportingClient != nil {
		if err := reportingClient.SubmitNodeReport(ctx, "receipts", contract.Name); err != nil {
			logger.WarnContext(ctx, "Failed to submit node report", slogx.Error(err))
		}
	}
	return module, nil
}

// Shutdown stops accepting calls, flushes queued event reports and releases the storage.
func (m *Module) Shutdown() error {
	ctx := context.Background()
	if err := m.Host.Shutdown(); err != nil {
		return errors.Wrap(err, "failed to shutdown host")
	}
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to cleanup receipts module", slogx.Error(err))
		}
	}
	logger.InfoContext(ctx, "Receipts module stopped")
	return nil
}
