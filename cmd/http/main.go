package main

import (
	"context"
	"fmt"
	"healthagent-service/internal/app/config"
	"healthagent-service/internal/app/delivery/http/controllers"
	"healthagent-service/internal/app/delivery/http/middlewares"
	"healthagent-service/internal/app/delivery/http/routers"
	"healthagent-service/internal/app/drivers/database"
	"healthagent-service/internal/app/drivers/logger"
	"healthagent-service/internal/app/services/core/chat"
	"healthagent-service/internal/app/services/core/intake"
	"healthagent-service/internal/app/services/core/session"
	"healthagent-service/internal/app/services/shared/analysis"
	"healthagent-service/internal/app/services/shared/locker"
	"healthagent-service/internal/app/services/shared/redis"
	"healthagent-service/internal/pkg/normalizer"
	"healthagent-service/internal/pkg/progress"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	analysisTimeout := time.Duration(internalConfig.Analysis.TimeoutInSeconds) * time.Second
	chatTimeout := time.Duration(internalConfig.Analysis.ChatTimeoutInSeconds) * time.Second
	sessionTTL := time.Duration(internalConfig.App.SessionTTLInMinutes) * time.Minute

	fieldMap, err := normalizer.LoadFieldMap(internalConfig.Analysis.FieldMapFile)
	if err != nil {
		return err
	}

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionRepository := redis.NewSessionRepository(redisRepository, sessionTTL, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Analysis service
	analysisClient := analysis.NewAnalysisClient(analysis.Options{
		BaseUrl:         internalConfig.Analysis.BaseUrl,
		AnalysisTimeout: analysisTimeout,
		ChatTimeout:     chatTimeout,
		RatePerSecond:   internalConfig.Analysis.RatePerSecond,
		Burst:           internalConfig.Analysis.Burst,
	}, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, internalConfig)

	// Session
	sessionUsecase := session.NewSessionUsecase(
		sessionRepository,
		progress.NewSimulator(internalConfig.Progress.PercentPerSecond),
		internalConfig.JWT.Secret,
		internalConfig.JWT.ExpTimeInHour,
		bootstrap.Logger,
	)
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionUsecase)

	// Intake
	intakeUsecase := intake.NewIntakeUsecase(
		analysisClient,
		sessionRepository,
		lockerService,
		normalizer.New(fieldMap),
		analysisTimeout,
		bootstrap.Logger,
	)
	intakeController := controllers.NewIntakeController(bootstrap.Logger, intakeUsecase, analysisTimeout)

	// Chat
	chatUsecase := chat.NewChatUsecase(analysisClient, sessionRepository, bootstrap.Logger)
	chatController := controllers.NewChatController(bootstrap.Logger, chatUsecase, chatTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		intakeController,
		sessionController,
		chatController,
	)
	return nil
}
