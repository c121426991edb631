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

	"roamly/availability"
	"roamly/cache"
	"roamly/db"
	"roamly/fetcher"
	"roamly/pricing"
	"roamly/ratelim"
	"roamly/rdx"
	"roamly/routes"
	"roamly/trips"
	"roamly/unfurl"
	"roamly/weather"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		// Referrer and permissions
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, store cache.Store) *httprouter.Router {
	fetch := fetcher.New()
	unfurlSvc := unfurl.NewService(fetch, store)

	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddUnfurlRoutes(router, rateLimiter, unfurl.NewHandler(unfurlSvc))
	routes.AddTripRoutes(router, trips.NewLinkHandler(unfurlSvc))
	routes.AddLinkRoutes(router)
	routes.AddItineraryRoutes(router)
	routes.AddCommentsRoutes(router)
	routes.AddPricingRoutes(router, rateLimiter, pricing.NewHandler(fetch))
	routes.AddWeatherRoutes(router, weather.NewHandler(store))
	routes.AddAvailabilityRoutes(router, rateLimiter, availability.NewHandler(availability.NewService(store)))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	if err := db.Connect(); err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}

	// shared Redis when configured, in-process cache otherwise
	var store cache.Store
	if client := rdx.Connect(); client != nil {
		store = cache.NewRedis(client)
		log.Println("Using Redis cache")
	} else {
		store = cache.NewMemory(nil)
		log.Println("Using in-memory cache")
	}

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(rateLimiter, store)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      45 * time.Second, // unfurls fan out to slow external sites
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}
	db.Disconnect(ctx)

	log.Println("✅ Server stopped cleanly")
}
