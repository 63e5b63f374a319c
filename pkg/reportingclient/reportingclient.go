package reportingclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/pkg/httpclient"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
)

type Config struct {
	Disabled   bool   `mapstructure:"disabled"`
	BaseURL    string `mapstructure:"base_url"`
	Name       string `mapstructure:"name"`
	WebsiteURL string `mapstructure:"website_url"`
}

// ReportingClient announces the node and forwards contract events to a collector service.
type ReportingClient struct {
	httpClient *httpclient.Client
	config     Config
}

const (
	defaultBaseURL = "https://indexer.api.gaze.network"
	requestTimeout = 10 * time.Second
)

func New(config Config) (*ReportingClient, error) {
	if config.Name == "" {
		return nil, errors.Wrap(errs.InvalidArgument, "reporting.name config is required if reporting is enabled")
	}
	httpClient, err := httpclient.New(utils.Default(config.BaseURL, defaultBaseURL), httpclient.Config{
		Timeout: requestTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &ReportingClient{
		httpClient: httpClient,
		config:     config,
	}, nil
}

type SubmitEventReportPayload struct {
	Reporter       string          `json:"reporter"`
	Contract       string          `json:"contract"`
	EntryPoint     string          `json:"entryPoint"`
	InvocationHash string          `json:"invocationHash"`
	Sequence       uint64          `json:"sequence"`
	Index          int             `json:"index"`
	Tag            string          `json:"tag"`
	Data           string          `json:"data"` // hex
	Payload        json.RawMessage `json:"payload,omitempty"`
	Timestamp      int64           `json:"timestamp"`
}

// SubmitEventReport posts one contract event. A non-2xx response is logged, not returned.
func (r *ReportingClient) SubmitEventReport(ctx context.Context, payload SubmitEventReportPayload) error {
	payload.Reporter = r.config.Name
	if err := r.post(ctx, "/v1/report/event", payload); err != nil {
		return errors.Wrap(err, "can't submit event report")
	}
	logger.DebugContext(ctx, "event report submitted",
		slog.String("contract", payload.Contract),
		slog.String("tag", payload.Tag),
		slog.Uint64("sequence", payload.Sequence),
	)
	return nil
}

type SubmitNodeReportPayload struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Contract   string `json:"contract"`
	WebsiteURL string `json:"websiteURL,omitempty"`
}

func (r *ReportingClient) SubmitNodeReport(ctx context.Context, module string, contract string) error {
	payload := SubmitNodeReportPayload{
		Name:       r.config.Name,
		Type:       module,
		Contract:   contract,
		WebsiteURL: r.config.WebsiteURL,
	}
	if err := r.post(ctx, "/v1/report/node", payload); err != nil {
		return errors.Wrap(err, "can't submit node report")
	}
	logger.InfoContext(ctx, "node report submitted", slog.Any("payload", payload))
	return nil
}

func (r *ReportingClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "can't marshal payload")
	}
	resp, err := r.httpClient.Post(ctx, path, httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return errors.Wrap(err, "can't send request")
	}
	if resp.StatusCode() >= 400 {
		logger.WarnContext(ctx, "report rejected",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode()),
			slog.String("response_body", string(resp.Body())),
		)
	}
	return nil
}
