package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/infra/database"
	"github.com/dentalhub/leads-api/internal/infra/http/handlers"
	"github.com/dentalhub/leads-api/internal/infra/http/middleware"
	"github.com/dentalhub/leads-api/internal/infra/queue"
	"github.com/dentalhub/leads-api/internal/infra/session"
	"github.com/dentalhub/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if err := database.RunMigrations(databaseURL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	db, err := database.NewDBConnection(databaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	// The broker feeds the downstream CRM. Lead capture must keep working
	// without it, so a failed connection only downgrades the deployment.
	var producer usecase.LeadEventPublisher
	var rabbit *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbit, err = queue.NewRabbitMQ(url)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, lead events disabled", zap.Error(err))
		} else {
			defer rabbit.Close()
			producer = queue.NewProducer(rabbit.Ch)
		}
	}

	// Repositories
	demoRepo := database.NewDemoRequestRepository(db)
	newsletterRepo := database.NewNewsletterRepository(db)
	userRepo := database.NewUserRepository(db)
	dentistRepo := database.NewDentistRepository(db)

	// Use cases
	submitUC := usecase.NewSubmitDemoRequestUseCase(demoRepo, producer, logger)
	adminUC := usecase.NewDemoRequestAdminUseCase(demoRepo, logger)
	newsletterUC := usecase.NewNewsletterUseCase(newsletterRepo, producer, logger)
	userUC := usecase.NewUserProfileUseCase(userRepo, logger)
	dentistUC := usecase.NewDentistProfileUseCase(dentistRepo, logger)

	// Session collaborator (demo identity only)
	sessions := session.NewStore(7 * 24 * time.Hour)

	// Handlers
	demoHandler := handlers.NewDemoRequestHandler(submitUC, adminUC)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterUC)
	authHandler := handlers.NewAuthHandler(userUC, sessions, logger)
	dentistHandler := handlers.NewDentistHandler(dentistUC)

	var brokerConn *amqp091.Connection
	if rabbit != nil {
		brokerConn = rabbit.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, brokerConn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	// Public intake
	r.Post("/api/demo-request", demoHandler.HandleSubmit)
	r.Post("/api/newsletter", newsletterHandler.HandleSubscribe)
	r.Post("/api/newsletter/unsubscribe", newsletterHandler.HandleUnsubscribe)

	// Session stub
	r.Get("/api/login", authHandler.HandleLogin)
	r.Get("/api/logout", authHandler.HandleLogout)

	// Dashboard (session required)
	r.Group(func(r chi.Router) {
		r.Use(authHandler.RequireAuth)
		r.Get("/api/auth/user", authHandler.HandleCurrentUser)
		r.Get("/api/demo-requests", demoHandler.HandleList)
		r.Patch("/api/demo-requests/{id}/status", demoHandler.HandleUpdateStatus)
		r.Get("/api/newsletter/subscribers", newsletterHandler.HandleListSubscribers)
		r.Get("/api/dentist", dentistHandler.HandleGet)
		r.Post("/api/dentist", dentistHandler.HandleCreate)
	})

	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
