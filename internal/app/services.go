package app

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/healinghandsmipt/website_backend/config"
	"github.com/healinghandsmipt/website_backend/internal/service/clinicinfo"
	"github.com/healinghandsmipt/website_backend/internal/service/contact"
	"github.com/healinghandsmipt/website_backend/internal/service/notification"
	"github.com/healinghandsmipt/website_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAdmitStore,
		ProvideContactService,
		ProvideNotificationService,
		ProvideClinicInfoService,
	),
)

func ProvideAdmitStore(cfg *config.Config, rdb *redis.Client) (contact.AdmitStore, error) {
	rl := cfg.Contact.RateLimit
	window := time.Duration(rl.WindowSeconds) * time.Second

	switch rl.Store {
	case "", "memory":
		pruneAfter := time.Duration(rl.PruneAfterMinutes) * time.Minute
		return contact.NewMemoryStore(window, pruneAfter, rl.PruneThreshold), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("contact rate-limit store is redis but no redis client is configured")
		}
		return contact.NewRedisStore(rdb, window), nil
	default:
		return nil, fmt.Errorf("unknown contact rate-limit store %q", rl.Store)
	}
}

func ProvideContactService(cfg *config.Config, store contact.AdmitStore, mailer *email.Client) contact.Service {
	return contact.New(cfg, store, mailer)
}

func ProvideNotificationService(cfg *config.Config) notification.Service {
	return notification.New(cfg.Notifications)
}

func ProvideClinicInfoService(cfg *config.Config) clinicinfo.Service {
	return clinicinfo.New(cfg.Site)
}
