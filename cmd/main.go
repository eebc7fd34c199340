package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/greenbasket/storefront/application/catalog"
	homeapp "github.com/greenbasket/storefront/application/home"
	newsletterapp "github.com/greenbasket/storefront/application/newsletter"
	profileapp "github.com/greenbasket/storefront/application/profile"
	shopperapp "github.com/greenbasket/storefront/application/shopper"
	userapp "github.com/greenbasket/storefront/application/user"
	"github.com/greenbasket/storefront/cmd/config"
	redisclient "github.com/greenbasket/storefront/cmd/redis"
	_ "github.com/greenbasket/storefront/docs"
	categoryRepo "github.com/greenbasket/storefront/repository/category"
	newsletterRepo "github.com/greenbasket/storefront/repository/newsletter"
	productRepo "github.com/greenbasket/storefront/repository/product"
	profileRepo "github.com/greenbasket/storefront/repository/profile"
	reviewRepo "github.com/greenbasket/storefront/repository/review"
	sessionRepo "github.com/greenbasket/storefront/repository/session"
	userRepo "github.com/greenbasket/storefront/repository/user"
	"github.com/greenbasket/storefront/thirdparty/rabbitmq"
	"github.com/greenbasket/storefront/transport"
	"github.com/greenbasket/storefront/utils/logger"
	"go.uber.org/zap"
)

// @title STOREFRONT API
// @version 1.0
// @description Storefront BFF API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Connect to RabbitMQ for newsletter welcome messages
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start rabbitmq consumer", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	ProfileRepo := profileRepo.NewProfileRepository(db)
	NewsletterRepo := newsletterRepo.NewNewsletterRepository(db)
	SessionRepo := sessionRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, SessionRepo)
	HomeApp := homeapp.NewHomeApp(cfg, ProductRepo, CategoryRepo)
	CatalogApp := catalogapp.NewCatalogApp(cfg, ProductRepo, ReviewRepo)
	ProfileApp := profileapp.NewProfileApp(ProfileRepo)
	ShopperApp := shopperapp.NewShopperApp(SessionRepo)
	NewsletterApp := newsletterapp.NewNewsletterApp(cfg, NewsletterRepo, publisher)

	httpTransport := transport.NewTransport(cfg.Internal.APIKey, &transport.RestHandler{
		UserApp:       UserApp,
		HomeApp:       HomeApp,
		CatalogApp:    CatalogApp,
		ProfileApp:    ProfileApp,
		ShopperApp:    ShopperApp,
		NewsletterApp: NewsletterApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
