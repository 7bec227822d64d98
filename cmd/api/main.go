package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gordohq/lead-portal/internal/infra/followup"
	"github.com/gordohq/lead-portal/internal/infra/http/handlers"
	"github.com/gordohq/lead-portal/internal/infra/http/middleware"
	"github.com/gordohq/lead-portal/internal/infra/mail"
	"github.com/gordohq/lead-portal/internal/infra/queue"
	"github.com/gordohq/lead-portal/internal/infra/store"
	"github.com/gordohq/lead-portal/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Store (CSV backing file + read cache)
	csvPath := envOr("LEADS_CSV_PATH", filepath.Join("data", "leads.csv"))
	ttl := store.DefaultTTL
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	leadStore := store.NewCachedStore(store.NewCSVStore(csvPath), ttl)
	if err := leadStore.Initialize(); err != nil {
		log.Fatal(err)
	}

	// 2. Optional side channels: events and mail. Missing config disables
	// the feature, it never aborts startup.
	var rabbitConn *amqp.Connection
	var producer usecase.EventPublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ rabbitmq: unavailable, lead events disabled: %v", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		}
	}

	var mailSender usecase.EmailService
	mailHost := os.Getenv("MAIL_HOST")
	if mailHost != "" {
		mailPort := 587
		if v := os.Getenv("MAIL_PORT"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				mailPort = p
			}
		}
		mailSender = mail.NewFollowUpSender(
			mailHost, mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			envOr("MAIL_FROM", "no-reply@gordoportal.com"),
		)
	}

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadStore, producer)
	generateFollowUpUC := usecase.NewGenerateFollowUpUseCase(
		leadStore,
		followup.NewComposer(),
		followup.NewWhatsAppLinkBuilder(),
		mailSender,
		producer,
	)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, leadStore)
	followUpHandler := handlers.NewFollowUpHandler(generateFollowUpUC)
	dashboardHandler := handlers.NewDashboardHandler(leadStore)
	healthHandler := handlers.NewHealthHandler(leadStore, rabbitConn, mailHost)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(envOr("CORS_ORIGINS", "*"), ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Post("/leads/check", leadHandler.CheckDuplicate)
	r.Post("/leads/{index}/followup", followUpHandler.Generate)
	r.Get("/followup/presets", followUpHandler.Presets)
	r.Get("/dashboard/summary", dashboardHandler.Summary)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Lead portal listening on %s (store: %s)", port, csvPath)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
