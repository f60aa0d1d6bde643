package mail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/legacylifegroup/funnel-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSkippedWhenUnconfigured(t *testing.T) {
	client := NewClient("http://mail.invalid", "", "fallback@example.com")
	result := client.Send(Message{To: "a@example.com"})
	assert.True(t, result.Skipped)
	assert.False(t, result.Sent)
	assert.False(t, result.Failed)
}

func TestSendSuccess(t *testing.T) {
	var got Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "fallback@example.com")
	result := client.Send(Message{To: "a@example.com", Subject: "hi", HTML: "<p>hi</p>"})
	assert.True(t, result.Sent)
	assert.Equal(t, "a@example.com", got.To)
	assert.Equal(t, "fallback@example.com", got.From, "empty From falls back to the configured sender")
}

func TestSendProviderFailureIsSoft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "fallback@example.com")
	result := client.Send(Message{To: "a@example.com"})
	assert.True(t, result.Failed)
	assert.Contains(t, result.Error, "429")
}

func TestCompletionEmailSenderFromBrandDomain(t *testing.T) {
	var messages []Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		messages = append(messages, msg)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "fallback@example.com")
	notifier := NewNotifier(client, nil, "rep@agency.com")

	lead := &models.Lead{
		SessionID: "s1",
		FirstName: "John",
		Email:     "john@example.com",
		Status:    models.LeadStatusCompleted,
	}
	b := &models.Brand{Name: "Veteran Legacy Life", Domain: "veteranlegacylife.com"}

	result := notifier.SendCompletionEmail(lead, b)
	assert.True(t, result.Sent)

	require.Len(t, messages, 2)
	assert.Equal(t, "no-reply@veteranlegacylife.com", messages[0].From)
	assert.Equal(t, "john@example.com", messages[0].To)
	assert.Contains(t, messages[0].Subject, "Veteran Legacy Life")
	assert.Equal(t, "rep@agency.com", messages[1].To)
	assert.Contains(t, messages[1].Subject, "John")
}

func TestCompletionEmailSkipsWithoutLeadEmail(t *testing.T) {
	client := NewClient("http://mail.invalid", "test-key", "fallback@example.com")
	notifier := NewNotifier(client, nil, "rep@agency.com")

	result := notifier.SendCompletionEmail(&models.Lead{SessionID: "s1"}, nil)
	assert.True(t, result.Skipped)
}

func TestCompletionEmailSkipsWhenUnconfigured(t *testing.T) {
	client := NewClient("", "", "")
	notifier := NewNotifier(client, nil, "")

	result := notifier.SendCompletionEmail(&models.Lead{Email: "a@example.com"}, nil)
	assert.True(t, result.Skipped)
}
