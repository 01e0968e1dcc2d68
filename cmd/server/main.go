package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/text/language"

	"github.com/mesat/flight-routes/internal/backend"
	"github.com/mesat/flight-routes/internal/cache"
	"github.com/mesat/flight-routes/internal/handler"
	"github.com/mesat/flight-routes/internal/ratelimit"
	"github.com/mesat/flight-routes/internal/routes"
	"github.com/mesat/flight-routes/internal/search"
	"github.com/mesat/flight-routes/internal/session"
)

type Config struct {
	Port           string
	BackendURL     string
	BackendTimeout time.Duration
	CacheEnabled   bool
	RedisHost      string
	RedisPort      string
	RedisTTL       time.Duration
	ComposeLocal   bool
	Collation      string
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	sess := session.New()

	limiter := ratelimit.NewGroupLimiterWithDefaults()
	limiter.SetGroupLimit("routes", 5, 10)
	limiter.SetGroupLimit("auth", 2, 5)

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
	}, sess, limiter)

	var routeCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		routeCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		routeCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	engine := search.New(collationTag(cfg.Collation))
	searcher := routes.NewSearcher(client, routeCache, cfg.ComposeLocal)
	if cfg.ComposeLocal {
		log.Println("Route composition: local (backend route search endpoint not used)")
	}

	authHandler := handler.NewAuthHandler(client, sess)
	locationHandler := handler.NewLocationHandler(client, engine)
	transportationHandler := handler.NewTransportationHandler(client, engine)
	routeHandler := handler.NewRouteHandler(searcher)

	api := e.Group("/api/v1")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/status", authHandler.Status)

	api.GET("/locations", locationHandler.List)
	api.GET("/locations/search", locationHandler.Search)
	api.POST("/locations", locationHandler.Create)
	api.PUT("/locations/:id", locationHandler.Update)
	api.DELETE("/locations/:id", locationHandler.Delete)

	api.GET("/transportations", transportationHandler.List)
	api.GET("/transportations/search", transportationHandler.Search)
	api.GET("/transportations/types", transportationHandler.Types)
	api.POST("/transportations", transportationHandler.Create)
	api.PUT("/transportations/:id", transportationHandler.Update)
	api.DELETE("/transportations/:id", transportationHandler.Delete)

	api.POST("/routes/search", routeHandler.Search)

	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight-routes console gateway on port %s (backend: %s)", cfg.Port, cfg.BackendURL)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	// .env is optional; deployments configure through the environment
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8081/api"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", true),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisTTL:       getEnvDuration("REDIS_TTL", 5*time.Minute),
		ComposeLocal:   getEnvBool("ROUTE_COMPOSE_LOCAL", false),
		Collation:      getEnv("COLLATION_LANG", "tr"),
	}
}

func collationTag(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		log.Printf("Invalid COLLATION_LANG %q, falling back to Turkish", lang)
		return language.Turkish
	}
	return tag
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
