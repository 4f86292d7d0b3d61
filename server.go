package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/config"
	"github.com/jaythan-dev/projeto-concessionaria/database"
	"github.com/jaythan-dev/projeto-concessionaria/handlers"
	"github.com/jaythan-dev/projeto-concessionaria/repository"
	"github.com/jaythan-dev/projeto-concessionaria/routes"
	"github.com/jaythan-dev/projeto-concessionaria/services"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

const shutdownTimeout = 10 * time.Second

// app 进程内所有长生命周期资源
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	wsManager *utils.WebSocketManager
	engine    *gin.Engine
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Server.Port = portFlag
	}

	logger, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.serve(ctx)
}

// newApp 按配置打开存储并装配路由
func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)

	a := &app{cfg: cfg, logger: logger}

	var repos repository.Repositories
	var store handlers.Pinger
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		repos = repository.NewMemoryRepositories()
	} else {
		db, err := database.Open(cfg.Database, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		a.db = db
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				a.close()
				return nil, err
			}
		}
		repos = repository.NewGormRepositories(db)
		store = handlers.PingFunc(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		})
		logger.Info("database connected", zap.String("driver", cfg.Database.Driver))
	}

	var notifier services.ChangeNotifier
	if cfg.Realtime.Enabled {
		a.wsManager = utils.NewWebSocketManager(logger)
		notifier = a.wsManager
	}

	a.engine = routes.SetupRoutes(routes.Dependencies{
		Brands:      services.NewBrandService(repos.Brands, notifier, logger),
		Owners:      services.NewOwnerService(repos.Owners, notifier, logger),
		Cars:        services.NewCarService(repos.Cars, notifier, logger),
		Store:       store,
		WSManager:   a.wsManager,
		CORSOrigins: cfg.CORS.AllowOrigins,
		Logger:      logger,
	})
	return a, nil
}

// serve 阻塞直到 ctx 取消，然后优雅关闭
func (a *app) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// websocket 连接已被劫持，Shutdown 不会等待它们
	if a.wsManager != nil {
		a.wsManager.CloseAll()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *app) close() {
	if a.wsManager != nil {
		a.wsManager.CloseAll()
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.logger.Warn("close database", zap.Error(err))
		}
	}
}
