package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL)
	err := n.Notify(context.Background(), "tests=5 failures=2 time_s=1.5")
	require.NoError(t, err)
	assert.Equal(t, "tests=5 failures=2 time_s=1.5", received["text"])
}

func TestWebhookNotifierServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewWebhookNotifier(server.URL)
	err := n.Notify(context.Background(), "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhookNotifierMissingURL(t *testing.T) {
	n := NewWebhookNotifier("")
	err := n.Notify(context.Background(), "msg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
