package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/genesehub/internal/auth"
	"github.com/ignatzorin/genesehub/internal/config"
	"github.com/ignatzorin/genesehub/internal/db"
	"github.com/ignatzorin/genesehub/internal/goroutine"
	httpHandlers "github.com/ignatzorin/genesehub/internal/http/handlers"
	httpRouter "github.com/ignatzorin/genesehub/internal/http/router"
	"github.com/ignatzorin/genesehub/internal/logger"
	"github.com/ignatzorin/genesehub/internal/postgrest"
	"github.com/ignatzorin/genesehub/internal/repository"
	"github.com/ignatzorin/genesehub/internal/service"
)

// stores собирает хранилища, выбранные по STORE_DRIVER.
type stores struct {
	profiles service.ProfileStore
	projects service.ProjectStore
	health   httpHandlers.Pinger
	close    func()
}

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if !cfg.IsProduction() {
		logger.SetTextFormatter()
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("main: ошибка подключения к хранилищу")
	}
	defer st.close()

	// Сервисы.
	profileService := service.NewProfileService(st.profiles, cfg.MockUserEmail)
	projectService := service.NewProjectService(st.projects)

	// HTTP хэндлеры.
	engine := httpRouter.SetupRouter(cfg, newProvider(cfg), httpRouter.Handlers{
		Pages:   httpHandlers.NewPageHandler(),
		Profile: httpHandlers.NewProfileHandler(profileService, projectService),
		Health:  httpHandlers.NewHealthHandler(st.health, cfg.StoreDriver),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	shutdownDone := goroutine.GoWithContext(ctx, "shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	logger.Log.WithFields(logrus.Fields{
		"port":         cfg.HTTPPort,
		"store_driver": cfg.StoreDriver,
		"auth_mode":    cfg.AuthMode,
	}).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
	<-shutdownDone
	logger.Log.Info("main: сервер остановлен")
}

// openStores подключает REST-клиент Supabase или базу Postgres.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverPostgres {
		dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		profiles := repository.NewProfileRepository(dbConn)
		return &stores{
			profiles: profiles,
			projects: repository.NewProjectRepository(dbConn),
			health:   profiles,
			close:    func() { safeClose(dbConn) },
		}, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = 15 * time.Second
	client, err := postgrest.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, transport)
	if err != nil {
		return nil, err
	}
	return &stores{
		profiles: client,
		projects: client,
		health:   client,
		close:    func() {},
	}, nil
}

// newProvider выбирает источник текущего пользователя по AUTH_MODE.
func newProvider(cfg *config.Config) auth.Provider {
	if cfg.AuthMode == config.AuthModeToken {
		return auth.NewTokenProvider(auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL))
	}
	if cfg.IsProduction() {
		logger.Log.Warn("main: AUTH_MODE=mock в production, пользователь берётся из MOCK_USER_ID")
	}
	return auth.NewMockProvider(nil)
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.WithError(err).Error("main: ошибка закрытия базы")
	}
}
