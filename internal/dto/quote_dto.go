package dto

// QuoteRequest carries the normalized applicant fields for an IUL
// illustration.
type QuoteRequest struct {
	State      string  `json:"state"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	Smoker     bool    `json:"smoker"`
	FaceAmount float64 `json:"face_amount"`
	Premium    float64 `json:"premium"`
	ProductID  string  `json:"product_id"`
}

// QuoteResponse wraps the upstream (or mocked) illustration payload.
type QuoteResponse struct {
	Success bool        `json:"success"`
	Mocked  bool        `json:"mocked,omitempty"`
	Data    interface{} `json:"data"`
}
