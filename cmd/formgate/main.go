package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/datavruti/formgate/pkg/clientip"
	"github.com/datavruti/formgate/pkg/config"
	"github.com/datavruti/formgate/pkg/delivery"
	"github.com/datavruti/formgate/pkg/httpapi"
	"github.com/datavruti/formgate/pkg/httpserver"
	"github.com/datavruti/formgate/pkg/logger"
	"github.com/datavruti/formgate/pkg/mailer"
	"github.com/datavruti/formgate/pkg/ratelimit"
	"github.com/datavruti/formgate/pkg/requestid"
	"github.com/datavruti/formgate/pkg/storage"
	"github.com/datavruti/formgate/pkg/submission"
)

type appConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	SupportEmail    string        `env:"SUPPORT_EMAIL" envDefault:"sales@datavruti.com"`
	DeliveryBackend string        `env:"DELIVERY_BACKEND" envDefault:"email"`
	StorageDriver   string        `env:"STORAGE_DRIVER" envDefault:"local"`
	SubmissionsDir  string        `env:"SUBMISSIONS_DIR" envDefault:"./submissions"`
	DisplayTimezone string        `env:"DISPLAY_TIMEZONE" envDefault:"Asia/Kolkata"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"5"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.Env == "production" {
		logOpts = append(logOpts, logger.WithProduction("formgate"))
	} else {
		logOpts = append(logOpts, logger.WithDevelopment("formgate"))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	normalizer := newNormalizer(log, cfg.DisplayTimezone)

	backend, err := newBackend(ctx, log.With(logger.Component("delivery")), cfg)
	if err != nil {
		return err
	}

	limiter, err := ratelimit.NewFixedWindow(cfg.RateLimit, cfg.RateLimitWindow)
	if err != nil {
		return err
	}

	handler := httpapi.NewHandler(
		log.With(logger.Component("httpapi")),
		normalizer, backend, cfg.SupportEmail,
	)
	router := httpapi.NewRouter(handler,
		clientip.Middleware,
		ratelimit.Middleware(limiter, ratelimit.ByClientIP()),
	)

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	srv := httpserver.New(srvCfg,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
	)
	return srv.Run(ctx, router)
}

func newNormalizer(log *slog.Logger, tz string) *submission.Normalizer {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn("invalid display timezone, using default",
			slog.String("timezone", tz),
			logger.Error(err),
		)
		return submission.NewNormalizer()
	}
	return submission.NewNormalizer(submission.WithDisplayLocation(loc))
}

// newBackend picks the delivery mode: "email" sends staff notifications via
// Postmark, "file" archives each submission as a document.
func newBackend(ctx context.Context, log *slog.Logger, cfg appConfig) (delivery.Backend, error) {
	switch cfg.DeliveryBackend {
	case "file":
		store, err := newStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("delivery backend: document store",
			slog.String("driver", cfg.StorageDriver))
		return delivery.NewDocumentBackend(store), nil

	case "email":
		var mailCfg mailer.Config
		if err := config.Load(&mailCfg); err != nil {
			return nil, err
		}
		var emailCfg delivery.EmailConfig
		if err := config.Load(&emailCfg); err != nil {
			return nil, err
		}

		// Missing credentials are tolerated: submissions are accepted and
		// acknowledged, delivery reports itself as skipped.
		var sender mailer.Sender
		if mailCfg.Configured() {
			var err error
			sender, err = mailer.NewPostmarkSender(mailCfg)
			if err != nil {
				return nil, err
			}
			log.Info("delivery backend: email",
				slog.String("to", emailCfg.DestinationEmail))
		} else {
			log.Warn("email credentials not configured, submissions will not be delivered")
		}
		return delivery.NewEmailBackend(emailCfg, sender), nil

	default:
		return nil, fmt.Errorf("unknown delivery backend %q: must be \"email\" or \"file\"", cfg.DeliveryBackend)
	}
}

func newStore(ctx context.Context, cfg appConfig) (storage.DocumentStore, error) {
	switch cfg.StorageDriver {
	case "s3":
		var s3Cfg storage.S3Config
		if err := config.Load(&s3Cfg); err != nil {
			return nil, err
		}
		return storage.NewS3(ctx, s3Cfg)
	case "local":
		return storage.NewLocal(cfg.SubmissionsDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q: must be \"local\" or \"s3\"", cfg.StorageDriver)
	}
}
