package dto

// ErrorResponse is the body of every non-2xx answer: the error kind
// plus a human-readable reason.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
