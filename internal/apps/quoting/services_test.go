package quoting

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMockedWhenUnconfigured(t *testing.T) {
	svc := NewQuoteService("", "", 5*time.Second)
	require.False(t, svc.IsConfigured())

	resp, err := svc.Quote(dto.QuoteRequest{FaceAmount: 500000, Age: 52, Smoker: false})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Mocked)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 500000.0, data["FaceAmount"])
	assert.Equal(t, "NonSmoker", data["SmokerStatus"])
	assert.Equal(t, 500000*0.012, data["AnnualPremium"])
}

func TestQuoteMockedWithoutHeaders(t *testing.T) {
	// endpoint alone is not enough; auth headers are required too
	svc := NewQuoteService("http://carrier.invalid", "", 5*time.Second)
	assert.False(t, svc.IsConfigured())

	svc = NewQuoteService("http://carrier.invalid", "{not json", 5*time.Second)
	assert.False(t, svc.IsConfigured())
}

func TestQuoteForwardsWithHeaders(t *testing.T) {
	upstream := []byte(`{"PolicyNumber":"IUL-123","AnnualPremium":6100.50}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-token", r.Header.Get("X-Api-Key"))

		var wire map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
		assert.Equal(t, 250000.0, wire["FaceAmount"])
		assert.Equal(t, "Smoker", wire["SmokerStatus"])

		w.Header().Set("Content-Type", "application/json")
		w.Write(upstream)
	}))
	defer server.Close()

	svc := NewQuoteService(server.URL, `{"X-Api-Key":"secret-token"}`, 5*time.Second)
	require.True(t, svc.IsConfigured())

	resp, err := svc.Quote(dto.QuoteRequest{FaceAmount: 250000, Smoker: true})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Mocked)
	assert.JSONEq(t, string(upstream), string(resp.Data.(json.RawMessage)))
}

func TestQuoteSurfacesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid state code", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := NewQuoteService(server.URL, `{"X-Api-Key":"k"}`, 5*time.Second)

	_, err := svc.Quote(dto.QuoteRequest{FaceAmount: 100000})
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnprocessableEntity, upstream.Status)
	assert.Contains(t, upstream.Message, "invalid state code")
}
