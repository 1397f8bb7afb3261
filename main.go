package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/12432383-sudo/housecraft-shop/controllers"
	"github.com/12432383-sudo/housecraft-shop/logger"
	"github.com/12432383-sudo/housecraft-shop/middleware"
	"github.com/12432383-sudo/housecraft-shop/models"
	"github.com/12432383-sudo/housecraft-shop/repository"
	"github.com/12432383-sudo/housecraft-shop/routes"
	"github.com/12432383-sudo/housecraft-shop/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. AWS clients ---

	cfgOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.AWSRegion),
	}
	if ak, sk := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); ak != "" || sk != "" {
		cfgOpts = append(cfgOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ak, sk, ""),
		))
	}
	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), cfgOpts...)
	if err != nil {
		logger.Initialize(cfg.Env)
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}

	// Structured logging, optionally teed into CloudWatch. The writer is a
	// no-op unless CLOUDWATCH_ENABLED=true.
	cwWriter, err := logger.NewCloudWatchWriter(context.Background(), awsCfg, "storefront")
	if err != nil {
		logger.Initialize(cfg.Env)
		zap.L().Warn("CloudWatch logging unavailable", zap.Error(err))
	} else if cwWriter.Enabled() {
		logger.InitializeWithWriter(cfg.Env, cwWriter)
	} else {
		logger.Initialize(cfg.Env)
	}
	defer logger.Log.Sync()

	ddbClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	// --- 2. Dependency injection ---

	productStore := repository.NewDynamoProductStore(ddbClient, cfg.ProductsTable)
	settingsStore := repository.NewDynamoSettingsStore(ddbClient, cfg.SettingsTable)
	objectStore := repository.NewS3ObjectStore(s3Client, cfg.S3Bucket, cfg.S3Endpoint)

	catalog, err := services.NewCatalog(productStore, models.SampleProducts(), logger.Log)
	if err != nil {
		zap.L().Fatal("Failed to build catalog", zap.Error(err))
	}
	settingsService := services.NewSettingsService(settingsStore, logger.Log)
	uploader := services.NewUploader(objectStore, logger.Log)

	// One load per process: remote first, bundled samples as the fallback.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	catalog.Load(loadCtx)
	settingsService.Load(loadCtx)
	cancelLoad()

	cache := controllers.NewCacheManager(redisClient)
	catalogController := controllers.NewCatalogController(catalog, settingsService, cache)
	adminController := controllers.NewAdminController(catalog, settingsService, uploader, cache)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, catalogController, adminController,
		middleware.RequireAdmin([]byte(cfg.JWTSecret), cfg.AdminEmails))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- 4. Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	// Drain detached mirror writes so local mutations reach the remote.
	catalog.Flush()
	settingsService.Flush()

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	zap.L().Info("Storefront service stopped gracefully")
}
