package dto

// ErrorResponse is the envelope used by auth/admin middleware failures.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Failure is the API error envelope the funnel and admin clients expect:
// { "success": false, "error": "..." }.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Fail(message string) Failure {
	return Failure{Success: false, Error: message}
}
