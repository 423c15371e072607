package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/areeb193/matraders-backend-sub001/config"
	"github.com/areeb193/matraders-backend-sub001/database"
	"github.com/areeb193/matraders-backend-sub001/handlers"
	"github.com/areeb193/matraders-backend-sub001/logger"
)

func main() {
	config.LoadEnv()

	level := logging.INFO
	if config.IsDebug() {
		level = logging.DEBUG
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.InitLogger(level)

	if config.IsDefaultJWTSecret() {
		logger.Warning("using default JWT_SECRET, set JWT_SECRET in the environment")
	}

	db, err := database.Open()
	if err != nil {
		logger.Error("failed to open database:", err)
		return
	}

	srv := &http.Server{
		Addr:    config.GetListenAddr(),
		Handler: handlers.SetupRouter(db),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error:", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error:", err)
	}
	if err := database.Close(db); err != nil {
		logger.Error("failed to close database:", err)
	}
}
