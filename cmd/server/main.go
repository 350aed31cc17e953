package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"familyhub/internal/config"
	"familyhub/internal/database"
	"familyhub/internal/handlers"
	"familyhub/internal/repository"
	"familyhub/internal/security"
	"familyhub/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	choreRepo := repository.NewChoreRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	eventRepo := repository.NewEventRepository(db)
	mealRepo := repository.NewMealRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)

	// Services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SessionDuration)
	familyService := service.NewFamilyService(familyRepo, memberRepo, emailService)
	choreService := service.NewChoreService(choreRepo)
	moodService := service.NewMoodService(moodRepo)
	eventService := service.NewEventService(eventRepo)
	mealService := service.NewMealService(mealRepo)
	shoppingService := service.NewShoppingService(shoppingRepo)
	dashboardService := service.NewDashboardService(memberRepo, choreRepo, moodRepo, eventRepo, mealRepo)
	exportService := service.NewExportService(memberRepo, choreRepo, moodRepo, eventRepo, shoppingRepo)

	// Middleware and handlers
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	rateLimiter := security.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	mw := handlers.NewMiddleware(authService, familyService, csrf, rateLimiter)

	oauthProviders := handlers.NewOAuthProviders(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.FacebookClientID, cfg.FacebookClientSecret)

	authHandler := handlers.NewAuthHandler(authService, csrf, oauthProviders, cfg.OAuthRedirectBaseURL)
	familyHandler := handlers.NewFamilyHandler(familyService)
	choreHandler := handlers.NewChoreHandler(choreService)
	moodHandler := handlers.NewMoodHandler(moodService)
	eventHandler := handlers.NewEventHandler(eventService)
	mealHandler := handlers.NewMealHandler(mealService)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/v1/auth/register", mw.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/v1/auth/login", mw.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/v1/auth/logout", mw.RequireAuth(authHandler.Logout))
	mux.HandleFunc("GET /api/v1/auth/me", mw.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/v1/auth/{provider}/start", mw.RateLimit(authHandler.StartOAuth))
	mux.HandleFunc("GET /api/v1/auth/{provider}/callback", mw.RateLimit(authHandler.OAuthCallback))

	// Family and members
	mux.HandleFunc("POST /api/v1/family", mw.RequireAuth(mw.VerifyCSRF(familyHandler.CreateFamily)))
	mux.HandleFunc("GET /api/v1/family", mw.RequireAuth(familyHandler.GetFamily))
	mux.HandleFunc("PUT /api/v1/family", mw.RequireMember(mw.VerifyCSRF(familyHandler.UpdateFamily)))
	mux.HandleFunc("DELETE /api/v1/family", mw.RequireMember(mw.VerifyCSRF(familyHandler.DeleteFamily)))
	mux.HandleFunc("POST /api/v1/family/join", mw.RequireAuth(mw.VerifyCSRF(familyHandler.Join)))
	mux.HandleFunc("POST /api/v1/family/members", mw.RequireMember(mw.VerifyCSRF(familyHandler.AddMember)))
	mux.HandleFunc("PUT /api/v1/family/members/{id}", mw.RequireMember(mw.VerifyCSRF(familyHandler.UpdateMember)))
	mux.HandleFunc("PUT /api/v1/family/members/{id}/role", mw.RequireMember(mw.VerifyCSRF(familyHandler.UpdateMemberRole)))
	mux.HandleFunc("POST /api/v1/family/members/{id}/invite", mw.RequireMember(mw.VerifyCSRF(familyHandler.RegenerateInvite)))
	mux.HandleFunc("DELETE /api/v1/family/members/{id}", mw.RequireMember(mw.VerifyCSRF(familyHandler.DeleteMember)))

	// Chores
	mux.HandleFunc("GET /api/v1/chores", mw.RequireMember(choreHandler.List))
	mux.HandleFunc("POST /api/v1/chores", mw.RequireMember(mw.VerifyCSRF(choreHandler.Create)))
	mux.HandleFunc("PUT /api/v1/chores/{id}", mw.RequireMember(mw.VerifyCSRF(choreHandler.Update)))
	mux.HandleFunc("POST /api/v1/chores/{id}/toggle", mw.RequireMember(mw.VerifyCSRF(choreHandler.Toggle)))
	mux.HandleFunc("DELETE /api/v1/chores/{id}", mw.RequireMember(mw.VerifyCSRF(choreHandler.Delete)))

	// Moods
	mux.HandleFunc("GET /api/v1/moods", mw.RequireMember(moodHandler.List))
	mux.HandleFunc("POST /api/v1/moods", mw.RequireMember(mw.VerifyCSRF(moodHandler.CheckIn)))
	mux.HandleFunc("DELETE /api/v1/moods/{id}", mw.RequireMember(mw.VerifyCSRF(moodHandler.Delete)))

	// Calendar
	mux.HandleFunc("GET /api/v1/events", mw.RequireMember(eventHandler.List))
	mux.HandleFunc("POST /api/v1/events", mw.RequireMember(mw.VerifyCSRF(eventHandler.Create)))
	mux.HandleFunc("PUT /api/v1/events/{id}", mw.RequireMember(mw.VerifyCSRF(eventHandler.Update)))
	mux.HandleFunc("DELETE /api/v1/events/{id}", mw.RequireMember(mw.VerifyCSRF(eventHandler.Delete)))

	// Meals
	mux.HandleFunc("GET /api/v1/meals", mw.RequireMember(mealHandler.List))
	mux.HandleFunc("GET /api/v1/meals/summary", mw.RequireMember(mealHandler.Summary))
	mux.HandleFunc("POST /api/v1/meals", mw.RequireMember(mw.VerifyCSRF(mealHandler.Propose)))
	mux.HandleFunc("POST /api/v1/meals/{id}/vote", mw.RequireMember(mw.VerifyCSRF(mealHandler.ToggleVote)))
	mux.HandleFunc("POST /api/v1/meals/{id}/select", mw.RequireMember(mw.VerifyCSRF(mealHandler.Select)))
	mux.HandleFunc("DELETE /api/v1/meals/{id}", mw.RequireMember(mw.VerifyCSRF(mealHandler.Delete)))

	// Shopping
	mux.HandleFunc("GET /api/v1/shopping", mw.RequireMember(shoppingHandler.List))
	mux.HandleFunc("POST /api/v1/shopping", mw.RequireMember(mw.VerifyCSRF(shoppingHandler.Add)))
	mux.HandleFunc("POST /api/v1/shopping/{id}/toggle", mw.RequireMember(mw.VerifyCSRF(shoppingHandler.Toggle)))
	mux.HandleFunc("POST /api/v1/shopping/clear-completed", mw.RequireMember(mw.VerifyCSRF(shoppingHandler.ClearCompleted)))
	mux.HandleFunc("DELETE /api/v1/shopping/{id}", mw.RequireMember(mw.VerifyCSRF(shoppingHandler.Delete)))

	// Dashboard and exports
	mux.HandleFunc("GET /api/v1/dashboard", mw.RequireMember(dashboardHandler.Overview))
	mux.HandleFunc("GET /api/v1/dashboard/feed", mw.RequireMember(dashboardHandler.Feed))
	mux.HandleFunc("GET /api/v1/dashboard/members/{id}/stats", mw.RequireMember(dashboardHandler.MemberStats))
	mux.HandleFunc("GET /api/v1/export/{kind}", mw.RequireMember(exportHandler.Export))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Expired sessions get swept periodically
	stopCleanup := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				authService.CleanupExpiredSessions()
			case <-stopCleanup:
				return
			}
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("FamilyHub listening on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
