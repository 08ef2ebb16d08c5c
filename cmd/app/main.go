package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/wiralabs/campaign-api/api"
	"github.com/wiralabs/campaign-api/apperr"
	"github.com/wiralabs/campaign-api/config"
	"github.com/wiralabs/campaign-api/constant"
	"github.com/wiralabs/campaign-api/domain/campaign"
	"github.com/wiralabs/campaign-api/infrastructure/cache"
	"github.com/wiralabs/campaign-api/infrastructure/db"
	appLogger "github.com/wiralabs/campaign-api/infrastructure/logger"
	"github.com/wiralabs/campaign-api/infrastructure/qrcode"
)

func main() {
	// Load configuration from environment variables
	cfg := config.LoadConfig()

	// Initialize logger based on environment
	appLogger.Initialize(cfg.IsProduction())
	defer appLogger.Close()

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataDBPath:      cfg.DatabasePath,
			constant.DataEnvironment: cfg.Environment,
		},
	})

	// Create SQLite repository
	repository, err := db.NewSQLiteRepository(cfg.DatabasePath)
	if err != nil {
		appLogger.Fatal(constant.MsgFailedToInitDB, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppDBInit,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataDBPath: cfg.DatabasePath,
			},
		})
	}
	defer repository.Close()

	cacheLRU := cache.NewNamespaceLRU(cfg.CacheSize)
	// Create campaign service
	service := campaign.NewService(repository, cacheLRU)

	// The responder receives its log sink explicitly so failure logging does
	// not depend on ambient globals.
	responder := apperr.NewResponder(appLogger.NewSink(appLogger.L()))

	// Create API handler and router
	handler := api.NewHandler(service, qrcode.NewGenerator(cfg.BaseURL), responder)
	diagnostics := api.NewDiagnostics(responder)
	router := api.NewRouter(handler, diagnostics, responder)
	router.SetupRoutes()

	// Configure HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}
