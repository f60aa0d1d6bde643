package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the transactional mail API. When no API key is
// configured every send degrades to a skipped no-op; mail is never allowed
// to fail a lead write.
type Client struct {
	apiURL     string
	apiKey     string
	fromAddr   string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey, fromAddr string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		fromAddr:   fromAddr,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) IsConfigured() bool { return c.apiKey != "" }

// FromFallback is the sender used when a brand has no domain.
func (c *Client) FromFallback() string { return c.fromAddr }

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendResult is a soft outcome: Skipped when unconfigured, Failed with the
// provider error when the API rejected the send. Never an error value.
type SendResult struct {
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped,omitempty"`
	Failed  bool   `json:"failed,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (c *Client) Send(msg Message) SendResult {
	if !c.IsConfigured() {
		return SendResult{Skipped: true}
	}
	if msg.From == "" {
		msg.From = c.fromAddr
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return SendResult{Failed: true, Error: err.Error()}
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return SendResult{Failed: true, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{Failed: true, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return SendResult{
			Failed: true,
			Error:  fmt.Sprintf("mail API status %d: %s", resp.StatusCode, string(respBody)),
		}
	}
	return SendResult{Sent: true}
}
