package entities

import "encoding/json"

// AIFailure tags why a text generation call did not produce usable output.
type AIFailure string

const (
	AIFailureNone       AIFailure = ""
	AIFailureMissingKey AIFailure = "missing_key"
	AIFailureTransport  AIFailure = "transport"
	AIFailureProvider   AIFailure = "provider"
	AIFailureEmpty      AIFailure = "empty"
	AIFailureMalformed  AIFailure = "malformed_json"
)

// AIResult is either OK with Text (and Data when a response schema was requested)
// or a failure with a user-facing Message.
type AIResult struct {
	OK      bool            `json:"ok"`
	Text    string          `json:"text,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Failure AIFailure       `json:"failure,omitempty"`
	Message string          `json:"message,omitempty"`
}

func AIText(text string) AIResult {
	return AIResult{OK: true, Text: text}
}

func AIFailed(kind AIFailure, message string) AIResult {
	return AIResult{Failure: kind, Message: message}
}
