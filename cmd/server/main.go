package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goldhollow/trophytable/internal/common/clock"
	commonUUID "github.com/goldhollow/trophytable/internal/common/uuid"
	"github.com/goldhollow/trophytable/internal/config"
	"github.com/goldhollow/trophytable/internal/dice"
	"github.com/goldhollow/trophytable/internal/handlers/httpapi"
	characterRepo "github.com/goldhollow/trophytable/internal/repositories/character"
	prefsRepo "github.com/goldhollow/trophytable/internal/repositories/prefs"
	rollRepo "github.com/goldhollow/trophytable/internal/repositories/roll"
	sessionRepo "github.com/goldhollow/trophytable/internal/repositories/session"
	"github.com/goldhollow/trophytable/internal/services/table"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create session repository", zap.Error(err))
	}

	rolls, err := rollRepo.NewRedis(&rollRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create roll repository", zap.Error(err))
	}

	characters, err := characterRepo.NewRedis(&characterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create character repository", zap.Error(err))
	}

	prefs, err := prefsRepo.NewRedis(&prefsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create prefs repository", zap.Error(err))
	}

	// Initialize the table service
	tableSvc, err := table.New(&table.Config{
		SessionRepo:   sessions,
		RollRepo:      rolls,
		CharacterRepo: characters,
		PrefsRepo:     prefs,
		DiceRoller:    dice.New(&dice.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: commonUUID.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create table service", zap.Error(err))
	}

	handler, err := httpapi.New(&httpapi.Config{
		TableService:  tableSvc,
		UUIDGenerator: commonUUID.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handler", zap.Error(err))
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Keep serving until interrupted
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown was not clean", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if cfg.Debug {
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		return zapCfg.Build()
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
