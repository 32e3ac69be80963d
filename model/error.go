package model

// AppError is the error payload carried by every stage error of this module.
// Callers switch on Code; Snippet carries the offending input when there is one.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Stage   string `json:"stage"`

	Snippet string `json:"snippet,omitempty"` // <= 200 chars
	Hint    string `json:"hint,omitempty"`
}
