// connector-proxy exposes a configured connector over HTTP. Requests to
// /api/{action} are resolved through the connector's fetch flow, including
// the fallback cache, so the proxy keeps serving the last known responses
// while the upstream API is down.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/fetchkit/connector/pkg/cache"
	"github.com/fetchkit/connector/pkg/config"
	"github.com/fetchkit/connector/pkg/connector"
	"github.com/fetchkit/connector/pkg/logging"
)

func main() {
	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
		Output: os.Stderr,
	})

	redisURL := getEnv("REDIS_URL", "localhost:6379")
	port := getEnv("PORT", "8080")

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("redis", redisURL).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("redis", redisURL).Msg("Connected to Redis")

	settings, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid connector configuration")
	}

	conn, err := connector.New(settings, cache.NewFallback(redisClient))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create connector")
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/ready", readyHandler(redisClient))
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/api/", actionHandler(conn))

	addr := ":" + port
	logger.Info().Str("addr", addr).Str("connector", settings.Name).
		Msg("Starting connector proxy")

	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "redis unavailable: %v", err)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func actionHandler(conn *connector.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Example: /api/current -> action "current"
		action := r.URL.Path[len("/api/"):]

		params := make(map[string]string)
		for name, values := range r.URL.Query() {
			if len(values) > 0 {
				params[name] = values[0]
			}
		}

		body, ok, err := conn.FetchData(r.Context(), action, params)
		if err != nil {
			if errors.Is(err, connector.ErrUnknownAction) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no data available", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, body)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
