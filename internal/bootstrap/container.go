package bootstrap

import (
	"context"
	"log"

	"mindmate-be/internal/config"
	"mindmate-be/internal/controller"
	"mindmate-be/internal/handler"
	"mindmate-be/internal/pkg/logger"
	"mindmate-be/internal/pkg/mailer"
	"mindmate-be/internal/repository/contract"
	"mindmate-be/internal/repository/implementation"
	"mindmate-be/internal/repository/memory"
	"mindmate-be/internal/repository/unitofwork"
	"mindmate-be/internal/service"
	"mindmate-be/internal/websocket"

	pktNats "mindmate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	OAuthController controller.IOAuthController
	UserController  controller.IUserController
	ChatController  controller.IChatController

	// Background Services (Exposed for main.go to run)
	SnapshotService service.ISnapshotService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Chat.ScoredTopicName, pubSub)
	snapshotService := service.NewSnapshotService(pubSub, cfg.Chat.ScoredTopicName)

	// Conversation storage is pluggable so a demo deploy can run without Postgres.
	var conversations contract.ConversationRepository
	if cfg.Chat.StorageBackend == "memory" {
		conversations = memory.NewConversationStore()
		log.Println("[INFO] Using chat storage: MEMORY")
	} else {
		conversations = implementation.NewConversationRepository(db)
		log.Println("[INFO] Using chat storage: POSTGRES")
	}

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory, natsPub)
	chatService := service.NewChatService(conversations, publisherService, natsPub)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container wired", map[string]interface{}{
		"chat_storage": cfg.Chat.StorageBackend,
		"environment":  cfg.App.Environment,
	})

	// 4. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService),
		UserController:  controller.NewUserController(userService),
		ChatController:  controller.NewChatController(chatService, snapshotService),

		SnapshotService: snapshotService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
