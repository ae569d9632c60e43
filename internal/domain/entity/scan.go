package entity

import "time"

// InputType enumerates what kind of content a scan classifies.
type InputType string

const (
	InputURL   InputType = "url"
	InputEmail InputType = "email"
)

// Valid reports whether the input type is one of the supported kinds.
func (t InputType) Valid() bool {
	return t == InputURL || t == InputEmail
}

// Verdict is the classifier's answer for a single input. Features is
// classifier-defined; it always carries a content-length figure and, for URL
// inputs, HTTPS-presence and literal-IP flags.
type Verdict struct {
	IsPhishing bool           `json:"isPhishing"`
	Confidence float64        `json:"confidence"`
	Features   map[string]any `json:"features"`
}

// Scan is one classification result owned by exactly one user. Scans are
// immutable once written; there is no update or delete path.
type Scan struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	InputType InputType `json:"inputType"`
	Content   string    `json:"content"`
	Result    Verdict   `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
}
