package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"lifehub/internal/api"
	"lifehub/internal/auth"
	"lifehub/internal/repository"
	"lifehub/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("WARNING: STRIPE_SECRET_KEY is not set. Billing endpoints will fail.")
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	contactRepo := repository.NewContactRepository(db)
	tripRepo := repository.NewTripRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	jobRepo := repository.NewJobRepository(db)
	billingRepo := repository.NewBillingRepository(db)

	sender := service.NewSenderService()
	authSvc := service.NewAuthService(userRepo)
	eventSvc := service.NewEventService(eventRepo)
	taskSvc := service.NewTaskService(taskRepo)
	contactSvc := service.NewContactService(contactRepo)
	tripSvc := service.NewTripService(tripRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	mailSvc := service.NewMailService(messageRepo)
	billingSvc := service.NewBillingService(billingRepo, userRepo)
	jobSvc := service.NewJobService(jobRepo, sender)

	authHandler := api.NewAuthHandler(authSvc)
	eventHandler := api.NewEventHandler(eventSvc)
	taskHandler := api.NewTaskHandler(taskSvc)
	contactHandler := api.NewContactHandler(contactSvc)
	tripHandler := api.NewTripHandler(tripSvc)
	expenseHandler := api.NewExpenseHandler(expenseSvc)
	mailHandler := api.NewMailHandler(mailSvc)
	billingHandler := api.NewBillingHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), billingSvc)

	r := mux.NewRouter()

	// Public endpoints
	authRouter := r.PathPrefix("/api/auth").Subrouter()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")})
		limiter := auth.NewRateLimiter(rdb, 30, time.Minute)
		authRouter.Use(limiter.Middleware)
	}
	authRouter.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	authRouter.HandleFunc("/login", authHandler.Login).Methods("POST")

	r.HandleFunc("/api/stripe/webhook", billingHandler.HandleWebhook).Methods("POST")

	// Everything below requires a valid token
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(auth.Middleware)

	apiRouter.HandleFunc("/events", eventHandler.CreateEvent).Methods("POST")
	apiRouter.HandleFunc("/events", eventHandler.ListEvents).Methods("GET")
	apiRouter.HandleFunc("/events/{id}", eventHandler.GetEvent).Methods("GET")
	apiRouter.HandleFunc("/events/{id}", eventHandler.UpdateEvent).Methods("PUT")
	apiRouter.HandleFunc("/events/{id}", eventHandler.DeleteEvent).Methods("DELETE")

	apiRouter.HandleFunc("/calendar/conflicts", eventHandler.CheckConflict).Methods("POST")
	apiRouter.HandleFunc("/calendar/slots", eventHandler.FindSlots).Methods("GET")
	apiRouter.HandleFunc("/calendar/stats", eventHandler.GetStats).Methods("GET")
	apiRouter.HandleFunc("/calendar/export.ics", eventHandler.ExportICS).Methods("GET")

	apiRouter.HandleFunc("/tasks", taskHandler.CreateTask).Methods("POST")
	apiRouter.HandleFunc("/tasks", taskHandler.ListTasks).Methods("GET")
	apiRouter.HandleFunc("/tasks/{id}", taskHandler.GetTask).Methods("GET")
	apiRouter.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods("PUT")
	apiRouter.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods("DELETE")

	apiRouter.HandleFunc("/contacts", contactHandler.CreateContact).Methods("POST")
	apiRouter.HandleFunc("/contacts", contactHandler.ListContacts).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.GetContact).Methods("GET")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.UpdateContact).Methods("PUT")
	apiRouter.HandleFunc("/contacts/{id}", contactHandler.DeleteContact).Methods("DELETE")

	apiRouter.HandleFunc("/trips", tripHandler.CreateTrip).Methods("POST")
	apiRouter.HandleFunc("/trips", tripHandler.ListTrips).Methods("GET")
	apiRouter.HandleFunc("/trips/{id}", tripHandler.GetTrip).Methods("GET")
	apiRouter.HandleFunc("/trips/{id}", tripHandler.UpdateTrip).Methods("PUT")
	apiRouter.HandleFunc("/trips/{id}", tripHandler.DeleteTrip).Methods("DELETE")

	apiRouter.HandleFunc("/expenses", expenseHandler.CreateExpense).Methods("POST")
	apiRouter.HandleFunc("/expenses", expenseHandler.ListExpenses).Methods("GET")
	apiRouter.HandleFunc("/expenses/summary", expenseHandler.GetSummary).Methods("GET")
	apiRouter.HandleFunc("/expenses/{id}", expenseHandler.GetExpense).Methods("GET")
	apiRouter.HandleFunc("/expenses/{id}", expenseHandler.UpdateExpense).Methods("PUT")
	apiRouter.HandleFunc("/expenses/{id}", expenseHandler.DeleteExpense).Methods("DELETE")

	apiRouter.HandleFunc("/messages", mailHandler.SendMessage).Methods("POST")
	apiRouter.HandleFunc("/messages", mailHandler.ListMessages).Methods("GET")
	apiRouter.HandleFunc("/messages/{id}", mailHandler.GetMessage).Methods("GET")
	apiRouter.HandleFunc("/messages/{id}", mailHandler.DeleteMessage).Methods("DELETE")

	apiRouter.HandleFunc("/billing/checkout", billingHandler.CreateCheckout).Methods("POST")

	c := cron.New()
	c.AddFunc("*/10 * * * *", func() {
		if err := jobSvc.CompletePastEvents(context.Background()); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("*/15 * * * *", func() {
		if err := jobSvc.SendUpcomingReminders(context.Background()); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.AddFunc("5 0 * * *", func() {
		if err := jobSvc.FlagOverdueTasks(context.Background()); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler)))
}
