package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	t.Run("sends the request and decodes the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req SessionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(12050), req.AmountMinor)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Session{ID: "sess_123", URL: "https://pay.example/sess_123"})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")
		session, err := client.CreateSession(context.Background(), SessionRequest{
			AmountMinor: 12050,
			Currency:    "usd",
			Description: "Payment for order #3",
		})

		require.NoError(t, err)
		assert.Equal(t, "sess_123", session.ID)
		assert.Equal(t, "https://pay.example/sess_123", session.URL)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "bad-key")
		_, err := client.CreateSession(context.Background(), SessionRequest{AmountMinor: 100})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("incomplete session is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(Session{ID: "sess_123"})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")
		_, err := client.CreateSession(context.Background(), SessionRequest{AmountMinor: 100})

		assert.Error(t, err)
	})
}
