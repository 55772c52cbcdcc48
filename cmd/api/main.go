package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"leaddesk/internal/config"
	"leaddesk/internal/infra/auth"
	"leaddesk/internal/infra/database"
	"leaddesk/internal/infra/http/handlers"
	"leaddesk/internal/infra/http/middleware"
	"leaddesk/internal/infra/mail"
	"leaddesk/internal/infra/queue"
	"leaddesk/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %s", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	campaignRepo := database.NewCampaignRepository(db)
	interactionRepo := database.NewInteractionRepository(db)

	// Outreach dispatch is optional: without a broker the API runs with
	// dispatch disabled.
	var producer usecase.QueueProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("connect to RabbitMQ: %s", err)
		}
		defer rabbitMQ.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
		worker := queue.NewWorker(rabbitMQ.Ch, sender, interactionRepo)
		go worker.Start(queue.QueueName)
	}

	// Services
	leadService := usecase.NewLeadService(leadRepo, campaignRepo, interactionRepo, producer)
	campaignService := usecase.NewCampaignService(campaignRepo, leadRepo)
	dashboardService := usecase.NewDashboardService(campaignRepo, leadRepo)

	// Handlers
	sessionStore := auth.NewSessionStore(redisClient, cfg.SessionTTL)
	leadHandler := handlers.NewLeadHandler(leadService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	var amqpConn *amqp091.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, redisClient, amqpConn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(sessionStore))

		r.Get("/leads", leadHandler.List)
		r.Post("/leads", leadHandler.Create)
		r.Get("/leads/{id}", leadHandler.Get)
		r.Patch("/leads/{id}", leadHandler.Update)
		r.Delete("/leads/{id}", leadHandler.Delete)
		r.Post("/leads/{id}/interactions", leadHandler.CreateInteraction)

		r.Get("/campaigns", campaignHandler.List)
		r.Post("/campaigns", campaignHandler.Create)
		r.Get("/campaigns/{id}", campaignHandler.Get)
		r.Patch("/campaigns/{id}", campaignHandler.Update)
		r.Delete("/campaigns/{id}", campaignHandler.Delete)

		r.Get("/dashboard/stats", dashboardHandler.Stats)
	})

	addr := ":" + cfg.Port
	log.Printf("leaddesk API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
