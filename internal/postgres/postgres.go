package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultMaxConns = 16
	DefaultMinConns = 0
	DefaultLogLevel = tracelog.LogLevelError
)

type Config struct {
	Host     string `mapstructure:"host"`     // default 127.0.0.1
	Port     string `mapstructure:"port"`     // default 5432
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`  // default postgres
	SSLMode  string `mapstructure:"ssl_mode"` // default prefer
	URL      string `mapstructure:"url"`      // takes precedence over the fields above

	MaxConns int32 `mapstructure:"max_conns"` // default 16
	MinConns int32 `mapstructure:"min_conns"` // default 0

	// Debug traces every query.
	Debug bool `mapstructure:"debug"`
}

// NewPool creates a connection pool and pings the database.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Join(errs.InvalidArgument, errors.Wrap(err, "failed to parse postgres config"))
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a new connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	return pool, nil
}

// String returns the connection string, the URL if set, a DSN otherwise.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}

	dsn := []string{
		"host=" + utils.Default(conf.Host, "127.0.0.1"),
		"port=" + utils.Default(conf.Port, "5432"),
		"dbname=" + utils.Default(conf.DBName, "postgres"),
		"sslmode=" + utils.Default(conf.SSLMode, "prefer"),
	}
	if conf.User != "" {
		dsn = append(dsn, "user="+conf.User)
	}
	if conf.Password != "" {
		dsn = append(dsn, "password="+conf.Password)
	}
	return strings.Join(dsn, " ")
}

// MigrateURL returns the database URL for golang-migrate.
func (conf Config) MigrateURL() string {
	if conf.URL != "" {
		return conf.URL
	}
	userinfo := ""
	if conf.User != "" {
		userinfo = conf.User
		if conf.Password != "" {
			userinfo += ":" + conf.Password
		}
		userinfo += "@"
	}
	return fmt.Sprintf("postgres://%s%s:%s/%s?sslmode=%s",
		userinfo,
		utils.Default(conf.Host, "127.0.0.1"),
		utils.Default(conf.Port, "5432"),
		utils.Default(conf.DBName, "postgres"),
		utils.Default(conf.SSLMode, "prefer"),
	)
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	level := DefaultLogLevel
	if conf.Debug {
		level = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: level,
	}
}
