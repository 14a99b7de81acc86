package bookingapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"escapade/config"
	"escapade/infras/bookingapi"
	"escapade/infras/otel/mocks"
	"escapade/shared/failure"
)

func newClient(t *testing.T, handler http.HandlerFunc) bookingapi.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.BookingAPI.BaseURL = server.URL
	cfg.External.BookingAPI.TimeoutSeconds = 5

	return bookingapi.New(cfg, mocks.NewOtel())
}

func TestClient_GetDecodesResponse(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/activities", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"act-kayak"},{"id":"act-canyon"}]`))
	})

	var out []struct {
		ID string `json:"id"`
	}

	err := client.Get(context.Background(), "/activities", &out)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "act-kayak", out[0].ID)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bk-1", body["id"])

		w.WriteHeader(http.StatusCreated)
	})

	err := client.Post(context.Background(), "/booking", map[string]string{"id": "bk-1"}, nil)

	assert.NoError(t, err)
}

func TestClient_NonSuccessStatusCarriesTheCode(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "not found", status: http.StatusNotFound},
		{name: "conflict", status: http.StatusConflict},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			})

			err := client.Patch(context.Background(), "/booking", map[string]string{}, nil)

			assert.Error(t, err)
			assert.Equal(t, tt.status, failure.GetCode(err))
		})
	}
}

func TestClient_UnreachableHost(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.BookingAPI.BaseURL = "http://127.0.0.1:1"
	cfg.External.BookingAPI.TimeoutSeconds = 1

	client := bookingapi.New(cfg, mocks.NewOtel())

	err := client.Get(context.Background(), "/activities", nil)

	assert.Error(t, err)
}
