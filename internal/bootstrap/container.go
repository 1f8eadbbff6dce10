package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/annaddsgr/Portfolio/internal/config"
	"github.com/annaddsgr/Portfolio/internal/controller"
	"github.com/annaddsgr/Portfolio/internal/handler"
	"github.com/annaddsgr/Portfolio/internal/model"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/internal/pkg/mailer"
	"github.com/annaddsgr/Portfolio/internal/repository/contract"
	"github.com/annaddsgr/Portfolio/internal/repository/implementation"
	"github.com/annaddsgr/Portfolio/internal/repository/memory"
	"github.com/annaddsgr/Portfolio/internal/service"
	"github.com/annaddsgr/Portfolio/internal/web"
	"github.com/annaddsgr/Portfolio/internal/websocket"
	"github.com/annaddsgr/Portfolio/pkg/database"
	"github.com/annaddsgr/Portfolio/pkg/delivery"
	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
	"github.com/annaddsgr/Portfolio/pkg/preferences"

	pktNats "github.com/annaddsgr/Portfolio/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BriefingController   controller.IBriefingController
	PreferenceController controller.IPreferenceController
	ContactController    controller.IContactController
	PageController       controller.IPageController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BriefingWsHandler *handler.BriefingWsHandler
	WebSocketHub      *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the application. db may be nil unless the postgres
// preference store is selected; redis and NATS are optional.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defaultLocale := i18n.ParseLocale(cfg.App.DefaultLocale)
	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		c.closers = append(c.closers, func() { rdb.Close() })
	}

	// NATS is only a relay for lifecycle events; the app runs without it.
	var relay service.EventRelay
	if cfg.Briefing.NatsEnabled && cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			relay = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	// 4. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.HubLogFilePath)
	var hubRedis *redis.Client
	if cfg.Briefing.RedisFanout {
		hubRedis = rdb
	}
	wsHub := websocket.NewHub(hubRedis, wsLogger)
	c.WebSocketHub = wsHub

	// 5. Repositories
	sessionRepo := memory.NewSessionRepository(cfg.Briefing.SessionTTL)

	artifactRepo, err := newArtifactRepository(cfg, rdb)
	if err != nil {
		return nil, err
	}

	preferenceRepo, err := newPreferenceRepository(cfg, rdb, db)
	if err != nil {
		return nil, err
	}

	// 6. Services
	var emailService mailer.IEmailService
	var sharer delivery.Sharer
	if cfg.SMTP.Enabled() {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			sysLogger,
		)
		sharer = delivery.NewEmailSharer(emailService, cfg.SMTP.StudioEmail, cfg.SMTP.MaxAttachmentBytes)
	}

	artifactService := service.NewArtifactService(artifactRepo, cfg.App.BaseURL, cfg.Briefing.ArtifactTTL, sysLogger)

	var opener delivery.Opener
	var notifier service.SessionNotifier
	if cfg.Briefing.WebsocketPush {
		opener = wsHub
		notifier = wsHub
	}

	dispatcher := delivery.NewDispatcher(
		sharer,
		artifactService,
		opener,
		delivery.Config{Phone: cfg.Briefing.WhatsAppPhone, Delay: cfg.Briefing.FallbackDelay},
		sysLogger,
	)

	publisherService := service.NewPublisherService(cfg.Briefing.EventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Briefing.EventsTopic,
		relay,
		notifier,
		sysLogger,
	)

	briefingService := service.NewBriefingService(
		sessionRepo,
		document.NewRenderer(),
		dispatcher,
		publisherService,
		defaultLocale,
		sysLogger,
	)

	var contactMailer service.Mailer
	if emailService != nil {
		contactMailer = emailService
	}
	contactService := service.NewContactService(contactMailer, cfg.SMTP.StudioEmail, cfg.Briefing.WhatsAppPhone, sysLogger)

	preferenceService := preferences.NewService(preferenceRepo)

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	// 7. Controllers
	c.BriefingController = controller.NewBriefingController(briefingService, artifactService)
	c.PreferenceController = controller.NewPreferenceController(
		preferenceService,
		cfg.Preferences.CookieName,
		cfg.Preferences.CookieMaxAge,
		defaultLocale,
		sysLogger,
	)
	c.ContactController = controller.NewContactController(contactService)
	c.PageController = controller.NewPageController(templates, sysLogger)
	c.BriefingWsHandler = handler.NewBriefingWsHandler(briefingService, wsHub, wsLogger)

	return c, nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newArtifactRepository(cfg *config.Config, rdb *redis.Client) (contract.ArtifactRepository, error) {
	switch cfg.Briefing.ArtifactStore {
	case "", "memory":
		return memory.NewArtifactRepository(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("ARTIFACT_STORE=redis requires REDIS_URL")
		}
		return implementation.NewArtifactRepository(rdb), nil
	default:
		return nil, fmt.Errorf("unknown ARTIFACT_STORE %q", cfg.Briefing.ArtifactStore)
	}
}

func newPreferenceRepository(cfg *config.Config, rdb *redis.Client, db *gorm.DB) (contract.PreferenceRepository, error) {
	switch cfg.Preferences.Store {
	case "", "memory":
		return memory.NewPreferenceRepository(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("PREFERENCE_STORE=redis requires REDIS_URL")
		}
		return implementation.NewRedisPreferenceRepository(rdb), nil
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("PREFERENCE_STORE=postgres requires DB_CONNECTION_STRING")
		}
		if err := database.Migrate(db, &model.VisitorPreference{}); err != nil {
			return nil, fmt.Errorf("failed to migrate preferences table: %w", err)
		}
		return implementation.NewGormPreferenceRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown PREFERENCE_STORE %q", cfg.Preferences.Store)
	}
}
