package main

import (
	"fmt"
	"log"
	"net/http"

	"eventpass/internal/config"
	"eventpass/internal/database"
	"eventpass/internal/handlers"
	"eventpass/internal/middleware"
	"eventpass/internal/models"
	"eventpass/internal/repositories"
	"eventpass/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	eventRepo := repositories.NewEventRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)

	// Initialize services
	eventService := services.NewEventService(eventRepo)
	ticketService := services.NewTicketService(eventRepo, ticketRepo)
	verificationService := services.NewVerificationService(ticketRepo)
	statsService := services.NewStatsService(eventRepo, ticketRepo)

	if cfg.Server.SeedDemoData {
		if err := seedDemoEvents(eventRepo, eventService); err != nil {
			log.Printf("Warning: failed to seed demo events: %v", err)
		}
	}

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService, ticketService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	verifyHandler := handlers.NewVerifyHandler(verificationService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/events", eventHandler.CreateEvent)
		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/{id}", eventHandler.GetEvent)
		r.Get("/events/{id}/tickets", eventHandler.EventTickets)

		r.Post("/tickets", ticketHandler.IssueTicket)
		r.Post("/tickets/batch", ticketHandler.IssueBatch)
		r.Get("/tickets", ticketHandler.ListTickets)
		r.Get("/tickets/{id}", ticketHandler.GetTicket)

		r.Post("/verify", verifyHandler.VerifyTicket)

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/stats/events", statsHandler.GetEventStats)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("EventPass API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}

// seedDemoEvents creates the two demo events on an empty catalog so a fresh
// install has something to issue tickets against
func seedDemoEvents(eventRepo *repositories.EventRepository, eventService *services.EventService) error {
	count, err := eventRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demos := []models.EventCreateRequest{
		{
			Name:        "Tech Conference 2024",
			Date:        "2024-11-15",
			Location:    "San Francisco, CA",
			Price:       29900,
			Currency:    "USD",
			FeeModel:    models.FeePassOn,
			Description: "The biggest tech event of the year.",
		},
		{
			Name:        "Summer Music Festival",
			Date:        "2024-07-20",
			Location:    "Austin, TX",
			Price:       15000,
			Currency:    "USD",
			FeeModel:    models.FeeAbsorb,
			Description: "Live music, food, and fun.",
		},
	}

	for i := range demos {
		if _, err := eventService.CreateEvent(&demos[i]); err != nil {
			return err
		}
	}

	log.Println("Seeded demo events")
	return nil
}
