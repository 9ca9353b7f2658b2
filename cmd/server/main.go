package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/taskhub/task-service/internal/api"
	"github.com/taskhub/task-service/internal/config"
	"github.com/taskhub/task-service/internal/infrastructure/client"
	"github.com/taskhub/task-service/internal/repository"
	"github.com/taskhub/task-service/internal/usecase"
)

func main() {
	cfg := config.Load()

	if err := runMigrations(cfg.DatabaseURL()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	pg, err := client.NewPostgresClient(cfg.DatabaseURL(), cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pg.Close()
	log.Println("connected to database")

	taskRepo := repository.NewTaskRepository(pg.GetPool())
	taskService := usecase.NewTaskService(taskRepo)
	router := api.NewRouter(taskService)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	startServer(server, cfg.ServerPort)
}

func startServer(server *http.Server, port string) {
	go func() {
		log.Printf("listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

func runMigrations(dbURL string) error {
	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Println("migrations applied")
	return nil
}
