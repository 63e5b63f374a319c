package config

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	receiptsconfig "github.com/gaze-network/realpay-receipts/modules/receipts/config"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestcontext"
	"github.com/gaze-network/realpay-receipts/pkg/middleware/requestlogger"
	"github.com/gaze-network/realpay-receipts/pkg/reportingclient"
	"github.com/gaze-network/realpay-receipts/pkg/s3archive"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit bool
	mu     sync.Mutex
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
		},
		Modules: Modules{
			Receipts: receiptsconfig.Default(),
		},
		Reporting: reportingclient.Config{
			Disabled: true,
		},
	}
)

type Config struct {
	Logger     logger.Config          `mapstructure:"logger"`
	HTTPServer HTTPServerConfig       `mapstructure:"http_server"`
	Modules    Modules                `mapstructure:"modules"`
	Reporting  reportingclient.Config `mapstructure:"reporting"`
	Export     ExportConfig           `mapstructure:"export"`
}

type Modules struct {
	Receipts receiptsconfig.Config `mapstructure:"receipts"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

type ExportConfig struct {
	S3 s3archive.Config `mapstructure:"s3"`
}

// Parse reads the configuration from configFile (or ./config.yaml) and environment variables.
// Environment variables use `_` as the key separator, e.g. HTTP_SERVER_PORT.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default config value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}

// Load returns the parsed configuration, parsing it with defaults on first use.
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if !isInit {
		return parse()
	}
	return *config
}

// BindPFlag binds a command line flag to a configuration key.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.String("package", "config"), slogx.Error(err))
	}
}
