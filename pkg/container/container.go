package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sravanvenkat03/library/internal/config"
	"github.com/Sravanvenkat03/library/internal/infrastructure/database"

	bookHandler "github.com/Sravanvenkat03/library/internal/domains/book/handler"
	bookRepo "github.com/Sravanvenkat03/library/internal/domains/book/repository"
	bookService "github.com/Sravanvenkat03/library/internal/domains/book/service"
	reviewHandler "github.com/Sravanvenkat03/library/internal/domains/review/handler"
	reviewRepo "github.com/Sravanvenkat03/library/internal/domains/review/repository"
	reviewService "github.com/Sravanvenkat03/library/internal/domains/review/service"
	userHandler "github.com/Sravanvenkat03/library/internal/domains/user/handler"
	userRepo "github.com/Sravanvenkat03/library/internal/domains/user/repository"
	userService "github.com/Sravanvenkat03/library/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root
// of the dependency graph. All members are singletons; the store
// handle is read-only after initialization.
type Container struct {
	Config *config.Config
	DB     *database.Mongo

	BookRepo   bookRepo.BookRepository
	UserRepo   userRepo.UserRepository
	ReviewRepo reviewRepo.ReviewRepository

	BookService   bookService.ServiceInterface
	UserService   userService.ServiceInterface
	ReviewService reviewService.ServiceInterface

	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler
	ReviewHandler *reviewHandler.ReviewHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph, in order:
// config, store, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: CONNECT TO MONGODB
	// ========================================
	log.Println("🗄️  Connecting to MongoDB...")

	db := database.NewMongo(&cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.BookRepo = bookRepo.NewMongoBookRepository(db.Books())
	c.UserRepo = userRepo.NewMongoUserRepository(db.Users(), db.ReadingProgress())
	c.ReviewRepo = reviewRepo.NewMongoReviewRepository(db.Reviews())
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 4: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.BookService = bookService.NewBookService(c.BookRepo, c.ReviewRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.BookRepo, c.ReviewRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.BookRepo)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 5: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 Container initialized successfully")
	return c, nil
}

// Cleanup releases container-held resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			log.Printf("⚠️  Failed to close database connection: %v", err)
		}
	}
}
