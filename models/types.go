package models

// Poll is a single read-only poll record.
// Field order is the serialized key order.
type Poll struct {
	ID       int64  `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
