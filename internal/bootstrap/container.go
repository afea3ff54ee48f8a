package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tpdc055/connectpng/internal/config"
	"github.com/tpdc055/connectpng/internal/infra/cache"
	"github.com/tpdc055/connectpng/internal/infra/db"
	"github.com/tpdc055/connectpng/internal/infra/logger"
	mq "github.com/tpdc055/connectpng/internal/infra/queue"
	"github.com/tpdc055/connectpng/internal/modules/handler"
	"github.com/tpdc055/connectpng/internal/modules/model"
	"github.com/tpdc055/connectpng/internal/modules/repo"
	"github.com/tpdc055/connectpng/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			// gen_random_uuid needs pgcrypto on Postgres < 13
			_ = d.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto")

			_ = d.AutoMigrate(
				&model.Province{},
				&model.User{},
				&model.UserProjectAccess{},
				&model.Project{},
				&model.ProjectSection{},
				&model.Contractor{},
				&model.ContractorProject{},
				&model.GpsPoint{},
				&model.QualityReport{},
				&model.Milestone{},
				&model.MilestoneUpdate{},
				&model.ProgressReport{},
				&model.ProjectFunding{},
				&model.FundingTransaction{},
			)
		}

		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ DialFunc for connection and reconnection
	do.Provide(inj, func(i *do.Injector) (mq.DialFunc, error) {
		cfg := do.MustInvoke[*config.Config](i)

		dialFn := func() (*amqp.Connection, error) {
			useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")

			if useTLS {
				tlsConfig := &tls.Config{
					MinVersion: tls.VersionTLS12,
				}
				url := cfg.RabbitMQ.URL
				if strings.HasPrefix(url, "amqp://") {
					url = strings.Replace(url, "amqp://", "amqps://", 1)
				}
				return amqp.DialTLS(url, tlsConfig)
			}

			return amqp.Dial(cfg.RabbitMQ.URL)
		}

		return dialFn, nil
	})

	// Event publisher. Live updates are best effort: when the broker is not
	// reachable at startup the API still comes up, with events discarded.
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		dialFn := do.MustInvoke[mq.DialFunc](i)

		if cfg.RabbitMQ.URL == "" {
			return service.NopEventPublisher{}, nil
		}

		conn, err := dialFn()
		if err != nil {
			log.Warn("rabbitmq unreachable, live updates disabled", zap.Error(err))
			return service.NopEventPublisher{}, nil
		}
		pub, err := mq.NewPublisher(conn, log, cfg)
		if err != nil {
			log.Warn("rabbitmq channel setup failed, live updates disabled", zap.Error(err))
			return service.NopEventPublisher{}, nil
		}
		return service.NewEventPublisher(pub, log), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProvinceRepo, error) {
		return repo.NewProvinceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SectionRepo, error) {
		return repo.NewSectionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContractorRepo, error) {
		return repo.NewContractorRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GpsPointRepo, error) {
		return repo.NewGpsPointRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.QualityReportRepo, error) {
		return repo.NewQualityReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MilestoneRepo, error) {
		return repo.NewMilestoneRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProgressReportRepo, error) {
		return repo.NewProgressReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FundingRepo, error) {
		return repo.NewFundingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SectionRepo](i),
			do.MustInvoke[repo.ProvinceRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContractorService, error) {
		return service.NewContractorService(
			do.MustInvoke[repo.ContractorRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GpsService, error) {
		return service.NewGpsService(
			do.MustInvoke[repo.GpsPointRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.QualityService, error) {
		return service.NewQualityService(
			do.MustInvoke[repo.QualityReportRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MilestoneService, error) {
		return service.NewMilestoneService(
			do.MustInvoke[repo.MilestoneRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProgressService, error) {
		return service.NewProgressService(
			do.MustInvoke[repo.ProgressReportRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SectionRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FundingService, error) {
		return service.NewFundingService(
			do.MustInvoke[repo.FundingRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LookupService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewLookupService(
			do.MustInvoke[repo.ProvinceRepo](i),
			do.MustInvoke[*redis.Client](i),
			time.Duration(cfg.Lookup.TTLSeconds)*time.Second,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReportService, error) {
		return service.NewReportService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.SectionRepo](i),
			do.MustInvoke[repo.ProvinceRepo](i),
			do.MustInvoke[repo.ContractorRepo](i),
			do.MustInvoke[repo.GpsPointRepo](i),
			do.MustInvoke[repo.QualityReportRepo](i),
			do.MustInvoke[repo.ProgressReportRepo](i),
			do.MustInvoke[repo.MilestoneRepo](i),
			do.MustInvoke[repo.FundingRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SectionHandler, error) {
		return handler.NewSectionHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContractorHandler, error) {
		return handler.NewContractorHandler(do.MustInvoke[service.ContractorService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GpsHandler, error) {
		return handler.NewGpsHandler(do.MustInvoke[service.GpsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.QualityHandler, error) {
		return handler.NewQualityHandler(do.MustInvoke[service.QualityService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MilestoneHandler, error) {
		return handler.NewMilestoneHandler(do.MustInvoke[service.MilestoneService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProgressHandler, error) {
		return handler.NewProgressHandler(do.MustInvoke[service.ProgressService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FundingHandler, error) {
		return handler.NewFundingHandler(do.MustInvoke[service.FundingService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.LookupHandler, error) {
		return handler.NewLookupHandler(do.MustInvoke[service.LookupService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReportHandler, error) {
		return handler.NewReportHandler(do.MustInvoke[service.ReportService](i)), nil
	})

	return inj
}

// Startup runs the post-wiring bootstrap: reference data seeding and the
// first-run setup notice.
func Startup(ctx context.Context, inj *do.Injector) error {
	log := do.MustInvoke[*zap.Logger](inj)

	if err := SeedProvinces(ctx, do.MustInvoke[repo.ProvinceRepo](inj), log); err != nil {
		return err
	}
	LogSetupState(ctx, do.MustInvoke[repo.UserRepo](inj), log)
	return nil
}
