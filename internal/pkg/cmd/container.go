package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/upservice/user-profile-service/pkg/cmd"
	"github.com/upservice/user-profile-service/pkg/env"
	"github.com/upservice/user-profile-service/pkg/http"
	"github.com/upservice/user-profile-service/pkg/lazy"
	"github.com/upservice/user-profile-service/pkg/log"
	"github.com/upservice/user-profile-service/pkg/message"
	"github.com/upservice/user-profile-service/pkg/metric"
	pkgmetricstub "github.com/upservice/user-profile-service/pkg/metric/stub"
	"github.com/upservice/user-profile-service/pkg/observability"
	"github.com/upservice/user-profile-service/pkg/pulsar"
	"github.com/upservice/user-profile-service/pkg/sql"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	MessageBroker     lazy.Loader[message.Broker]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Metrics           lazy.Loader[metric.Metrics]
	Observer          lazy.Loader[observability.Observer]
	Logger            lazy.Loader[log.Logger]

	messageBrokerImpl lazy.Loader[*pulsar.MessageBroker]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(logger)
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)

	msgBrokerImpl := pulsarMessageBrokerProvider()
	msgBroker := lazy.New(func() (message.Broker, error) { return msgBrokerImpl.Load() })

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		MessageBroker:     msgBroker,
		DBMigrations:      dbMigrations,
		DB:                db,
		Metrics:           metrics,
		Observer:          observer,
		Logger:            logger,
		messageBrokerImpl: msgBrokerImpl,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return pkgmetricstub.NewMetrics(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithRequestIDLogging(logger.MustLoad()),
		), nil
	})
}

func sqlDatabaseProvider(logger lazy.Loader[log.Logger]) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.Parse[int]("SQL_MAX_OPEN_CONNECTIONS")),
			MaxIdleConnections: env.Must(env.Parse[int]("SQL_MAX_IDLE_CONNECTIONS")),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func pulsarMessageBrokerProvider() lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		config := &pulsar.Config{
			Address: env.Must(env.Parse[string]("PULSAR_ADDRESS")),
		}
		connTimeout := env.Must(env.ParseOptional[time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		stubLogger := log.New(log.LevelDisabled)
		messageBroker, err := pulsar.NewMessageBroker(config, stubLogger)
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return messageBroker, nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := http.DefaultServerAddress
		customAddress := env.Must(env.ParseOptional[string]("SERVICE_ADDRESS"))
		if customAddress != nil {
			address = *customAddress
		}

		logExcludedPaths := []string{http.HealthPath}
		customExcludedPaths, err := env.ParseList[string]("HTTP_LOG_EXCLUDED_PATHS", ",")
		if err == nil {
			logExcludedPaths = append(logExcludedPaths, customExcludedPaths...)
		}

		return http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithCORSHandler(),
			http.WithObservability(
				observer.MustLoad(),
				http.NewHTTPHeaderRequestIDExtractor(http.DefaultRequestIDHeader),
				http.NewRandomUUIDRequestIDExtractor(),
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError, logExcludedPaths...),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), http.DefaultRequestIDHeader),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
