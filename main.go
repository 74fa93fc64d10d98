package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"forum/app/config"
	"forum/app/controllers"
	"forum/app/repositories"
	"forum/app/repositories/postgres"
	"forum/app/routes"
	"forum/app/services"
)

const cliVersion = "1.0.0"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("forum version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: forum <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the forum API server (default).

Configuration is read from the environment (or a .env file):
  PORT          listen port (default 5000)
  STORAGE       badger | postgres (default badger)
  BADGER_PATH   path of the embedded store (default data/badger)
  DATABASE_URL  Postgres DSN, required when STORAGE=postgres
  APP_ENV       "production" suppresses error details in responses
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()

	var postRepo repositories.PostRepository
	var commentRepo repositories.CommentRepository

	switch cfg.Storage {
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		postRepo = postgres.NewPostRepository(pool)
		commentRepo = postgres.NewCommentRepository(pool)
		log.Println("Connected to PostgreSQL")
	case "badger":
		db, err := repositories.Open(cfg.BadgerPath)
		if err != nil {
			log.Fatalf("Failed to open Badger DB: %v", err)
		}
		defer db.Close()
		postRepo = repositories.NewBadgerPostRepository(db)
		commentRepo = repositories.NewBadgerCommentRepository(db)
		log.Printf("Opened Badger store at %s", cfg.BadgerPath)
	default:
		log.Fatalf("Unknown storage type: %s", cfg.Storage)
	}

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	exposeDetails := !cfg.IsProduction()
	router := routes.SetupRoutes(
		controllers.NewPostController(postService, exposeDetails),
		controllers.NewCommentController(commentService, exposeDetails),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
