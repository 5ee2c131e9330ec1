package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-notifier/docs"
	"github.com/SergeyBogomolovv/order-notifier/internal/app"
	"github.com/SergeyBogomolovv/order-notifier/internal/config"
	"github.com/SergeyBogomolovv/order-notifier/internal/email"
	"github.com/SergeyBogomolovv/order-notifier/internal/entities"
	"github.com/SergeyBogomolovv/order-notifier/internal/handler"
	"github.com/SergeyBogomolovv/order-notifier/internal/middleware"
	"github.com/SergeyBogomolovv/order-notifier/internal/postgres"
	"github.com/SergeyBogomolovv/order-notifier/internal/service"
	"github.com/SergeyBogomolovv/order-notifier/internal/store"
	"github.com/SergeyBogomolovv/order-notifier/pkg/cache"
	"github.com/SergeyBogomolovv/order-notifier/pkg/upstream"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Order Notifier API
// @version         1.0
// @description     Прием заказов с витрины и отправка писем покупателям
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	handler.RegisterMetrics(prometheus.DefaultRegisterer)
	middleware.RegisterMetrics(prometheus.DefaultRegisterer)

	recordStore := newRecordStore(ctx, logger, conf)

	formatter, err := email.NewFormatter(email.FormatterConfig{
		TrackingBaseURL: conf.Tracking.BaseURL,
		LogoURL:         conf.Tracking.LogoURL,
		Brand:           conf.Tracking.Brand,
	})
	panicIfErr("failed to load email templates", err)

	mailer := email.NewResendClient(logger, upstream.New("resend", conf.UpstreamTimeout), email.ResendConfig{
		BaseURL: conf.Email.BaseURL,
		APIKey:  conf.Email.APIKey,
		Sender:  conf.Email.Sender,
	})

	trackingCache := cache.NewLRUCache[entities.OrderRecord](conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, recordStore, formatter, mailer, trackingCache)

	app := app.New(logger, conf, prometheus.DefaultGatherer)

	app.SetHTTPHandlers(handler.NewHTTPHandler(logger, orderService))
	app.SetStarters(trackingCache)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newRecordStore(ctx context.Context, logger *slog.Logger, conf config.Config) service.RecordStore {
	if conf.Store.Driver == config.StorePostgres {
		db, err := postgres.New(ctx, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
		logger.Info("postgres connected")
		return store.NewPostgresStore(db)
	}

	return store.NewFirebaseStore(logger, upstream.New("firebase", conf.UpstreamTimeout), store.FirebaseConfig{
		BaseURL:   conf.Store.BaseURL,
		AuthToken: conf.Store.AuthToken,
	})
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
