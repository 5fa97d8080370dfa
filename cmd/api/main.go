package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadcentral/internal/auth"
	"github.com/xavierca1/leadcentral/internal/bootstrap"
	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/database"
	"github.com/xavierca1/leadcentral/internal/infra/http/handlers"
	"github.com/xavierca1/leadcentral/internal/infra/http/middleware"
	"github.com/xavierca1/leadcentral/internal/infra/importer"
	"github.com/xavierca1/leadcentral/internal/infra/mail"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
	"github.com/xavierca1/leadcentral/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	prospectRepo := database.NewProspectRepository(db)
	callRepo := database.NewCallRepository(db)

	// 2. Adapters
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "nao-reply@leadcentral.app"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	parser := importer.NewParser()
	tokens := auth.NewTokenManager(envOr("JWT_SECRET", "leadcentral-secret-key-2024"))

	// 3. Worker (drains the notification queue into SMTP)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	opsEmail := envOr("ADMIN_EMAIL", "admin@leadcentral.com")
	appURL := envOr("APP_URL", "https://app.leadcentral.com")

	// 4. UseCases
	registerUC := usecase.NewRegisterUserUseCase(userRepo, producer, opsEmail, appURL)
	validateUC := usecase.NewValidateUserUseCase(userRepo, producer, appURL)
	loginUC := usecase.NewLoginUseCase(userRepo, tokens)
	recordCallUC := usecase.NewRecordCallUseCase(prospectRepo, callRepo, producer, opsEmail)
	assignUC := usecase.NewAssignProspectsUseCase(prospectRepo)
	importUC := usecase.NewImportProspectsUseCase(prospectRepo, parser)
	manageUC := usecase.NewManageProspectsUseCase(prospectRepo, userRepo)
	statsUC := usecase.NewStatsUseCase(prospectRepo, callRepo, userRepo)

	// 5. Seed the organizer account
	if err := bootstrap.EnsureAdmin(context.Background(), userRepo, opsEmail, envOr("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatal(err)
	}

	// 6. Handlers
	authHandler := handlers.NewAuthHandler(registerUC, validateUC, loginUC)
	prospectHandler := handlers.NewProspectHandler(manageUC, recordCallUC, statsUC)
	adminHandler := handlers.NewAdminHandler(manageUC, assignUC, importUC, statsUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)
	authenticator := middleware.NewAuthenticator(tokens, userRepo)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Root)
		r.Get("/health", healthHandler.Handle)

		r.Post("/auth/register", authHandler.Register)
		r.Get("/auth/validate/{token}", authHandler.Validate)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Get("/prospects", prospectHandler.List)
			r.Post("/prospects/call-result", prospectHandler.CallResult)
			r.Get("/prospects/stats", prospectHandler.Stats)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireRole(entity.RoleAdmin))

				r.Get("/prospecteurs", adminHandler.Prospecteurs)
				r.Put("/prospecteurs/{id}/status", adminHandler.UpdateProspecteurStatus)

				r.Post("/prospects/import", adminHandler.Import)
				r.Get("/prospects/unassigned", adminHandler.Unassigned)
				r.Post("/prospects/assign", adminHandler.Assign)
				r.Get("/prospects/all", adminHandler.All)
				r.Put("/prospects/{id}", adminHandler.UpdateProspect)
				r.Delete("/prospects/{id}", adminHandler.DeleteProspect)
				r.Put("/prospects/{id}/reassign", adminHandler.Reassign)

				r.Get("/stats", adminHandler.Stats)
			})
		})
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("LeadCentral API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
