package bootstrap

import (
	"context"
	"log"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/controller"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/pkg/mailer"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/internal/service"
	"chatdesk-be/pkg/events"
	pktNats "chatdesk-be/pkg/nats"
	"chatdesk-be/pkg/webpush"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	DashboardController    controller.IDashboardController
	SessionController      controller.ISessionController
	MessageController      controller.IMessageController
	PushController         controller.IPushController
	AdminController        controller.IAdminController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	DispatcherService service.IDispatcherService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.SMTP.ReplyTo,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Typing flags fall back to the database", err)
			rdb = nil
		}
	}

	pushSender := webpush.NewVapidSender(
		cfg.Push.VapidPublicKey,
		cfg.Push.VapidPrivateKey,
		cfg.Push.VapidSubject,
	)
	pushLogger := logger.NewIsolatedLogger("logs/push.log")

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, service.SessionEventsTopic, sysLogger)
	accessService := service.NewAccessService(uowFactory, cfg.Auth.SuperadminEmail, sysLogger)
	presenceService := service.NewPresenceService(rdb, uowFactory, sysLogger)
	sessionService := service.NewSessionService(uowFactory, emailService, publisherService, presenceService, sysLogger)
	pushService := service.NewPushService(uowFactory, pushSender, pushLogger)
	notificationService := service.NewNotificationService(uowFactory)
	adminService := service.NewAdminService(uowFactory)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret)

	dispatcherService := service.NewDispatcherService(
		pubSub,
		service.SessionEventsTopic,
		pushService,
		natsPub,
		sysLogger,
	)

	// Widget escalations arrive over NATS; bridge them onto the internal
	// bus so the dispatcher treats them like local transitions.
	if natsSub != nil {
		err := natsSub.Subscribe("chat."+events.TypeSessionEscalation, "chatdesk-escalations",
			func(ctx context.Context, event events.Event) error {
				return publisherService.PublishSessionEvent(ctx, event)
			})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to escalations: %v", err)
		}
	}

	// 4. Controllers
	jwtAuth := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		DashboardController:    controller.NewDashboardController(accessService, sessionService, adminService, jwtAuth),
		SessionController:      controller.NewSessionController(accessService, sessionService, jwtAuth),
		MessageController:      controller.NewMessageController(accessService, sessionService, jwtAuth),
		PushController:         controller.NewPushController(pushService, cfg.Push.InternalAPIKey, jwtAuth),
		AdminController:        controller.NewAdminController(accessService, adminService, jwtAuth),
		NotificationController: controller.NewNotificationController(accessService, notificationService, jwtAuth),

		DispatcherService: dispatcherService,
	}
}
