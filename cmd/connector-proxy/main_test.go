package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fetchkit/connector/internal/testutil"
	"github.com/fetchkit/connector/pkg/cache"
	"github.com/fetchkit/connector/pkg/config"
	"github.com/fetchkit/connector/pkg/connector"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, srv
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	healthHandler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if string(body) != "OK" {
		t.Errorf("Expected body 'OK', got %s", body)
	}
}

func TestReadyEndpoint(t *testing.T) {
	redisClient, srv := setupTestRedis(t)
	handler := readyHandler(redisClient)

	t.Run("ready", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ready", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Result().StatusCode)
		}
	})

	t.Run("not_ready_redis_down", func(t *testing.T) {
		srv.Close()

		req := httptest.NewRequest("GET", "/ready", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		if w.Result().StatusCode != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", w.Result().StatusCode)
		}
	})
}

func newTestConnector(t *testing.T, apiURL string) *connector.Connector {
	t.Helper()

	redisClient, _ := setupTestRedis(t)

	conn, err := connector.New(config.Settings{
		Name:             "proxy-test",
		APIURL:           apiURL,
		Actions:          map[string]string{"current": "/current.json"},
		UseFallbackCache: true,
	}, cache.NewFallback(redisClient))
	if err != nil {
		t.Fatalf("Failed to create connector: %v", err)
	}

	return conn
}

func TestActionHandler(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetResponse("/current.json", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       `{"temp": 21.5}`,
	})

	handler := actionHandler(newTestConnector(t, mock.URL()))

	req := httptest.NewRequest("GET", "/api/current?city=Mainz", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "21.5") {
		t.Errorf("Expected upstream body, got %s", body)
	}

	if query := mock.GetLastRequestQuery(); len(query["city"]) == 0 || query["city"][0] != "Mainz" {
		t.Errorf("Expected city parameter forwarded, got %v", query)
	}
}

func TestActionHandler_UnknownAction(t *testing.T) {
	handler := actionHandler(newTestConnector(t, "http://127.0.0.1:1"))

	req := httptest.NewRequest("GET", "/api/nope", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Result().StatusCode)
	}
}

func TestActionHandler_UpstreamDown(t *testing.T) {
	handler := actionHandler(newTestConnector(t, "http://127.0.0.1:1"))

	req := httptest.NewRequest("GET", "/api/current", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Result().StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Result().StatusCode)
	}
}
