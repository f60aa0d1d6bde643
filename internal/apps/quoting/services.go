package quoting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/legacylifegroup/funnel-backend/internal/dto"
)

// UpstreamError carries a non-2xx carrier response back to the caller with
// the upstream's own status code.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("quote API status %d: %s", e.Status, e.Message)
}

// QuoteService proxies illustration requests to the carrier API. Without
// an endpoint and auth headers configured it serves a mocked illustration
// so the funnel keeps working in development and demo environments.
type QuoteService struct {
	apiURL     string
	headers    map[string]string
	httpClient *http.Client
}

// NewQuoteService parses the auth headers blob (a JSON object of
// header→value). A blank or malformed blob leaves the service unconfigured.
func NewQuoteService(apiURL, headersBlob string, timeout time.Duration) *QuoteService {
	s := &QuoteService{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	if headersBlob != "" {
		var headers map[string]string
		if err := json.Unmarshal([]byte(headersBlob), &headers); err == nil {
			s.headers = headers
		}
	}
	return s
}

func (s *QuoteService) IsConfigured() bool {
	return s.apiURL != "" && len(s.headers) > 0
}

// illustrationRequest is the carrier's wire format.
type illustrationRequest struct {
	ProductID     string  `json:"ProductID"`
	State         string  `json:"State"`
	Age           int     `json:"Age"`
	Gender        string  `json:"Gender"`
	SmokerStatus  string  `json:"SmokerStatus"`
	FaceAmount    float64 `json:"FaceAmount"`
	AnnualPremium float64 `json:"AnnualPremium"`
}

// Quote forwards the normalized request upstream and returns the carrier's
// JSON verbatim, or a mocked illustration when unconfigured.
func (s *QuoteService) Quote(req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if !s.IsConfigured() {
		return &dto.QuoteResponse{
			Success: true,
			Mocked:  true,
			Data:    mockIllustration(req),
		}, nil
	}

	payload := illustrationRequest{
		ProductID:     req.ProductID,
		State:         req.State,
		Age:           req.Age,
		Gender:        req.Gender,
		SmokerStatus:  smokerStatus(req.Smoker),
		FaceAmount:    req.FaceAmount,
		AnnualPremium: req.Premium,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, val := range s.headers {
		httpReq.Header.Set(key, val)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: string(respBody)}
	}

	return &dto.QuoteResponse{
		Success: true,
		Data:    json.RawMessage(respBody),
	}, nil
}

func smokerStatus(smoker bool) string {
	if smoker {
		return "Smoker"
	}
	return "NonSmoker"
}

// mockIllustration returns a static placeholder payload. The mocked flag
// on the envelope lets callers distinguish it from carrier data.
func mockIllustration(req dto.QuoteRequest) map[string]interface{} {
	premium := req.Premium
	if premium == 0 {
		premium = req.FaceAmount * 0.012
	}
	return map[string]interface{}{
		"ProductID":       req.ProductID,
		"ProductName":     "Indexed Universal Life",
		"FaceAmount":      req.FaceAmount,
		"AnnualPremium":   premium,
		"IllustratedRate": 6.21,
		"State":           req.State,
		"Age":             req.Age,
		"Gender":          req.Gender,
		"SmokerStatus":    smokerStatus(req.Smoker),
	}
}
