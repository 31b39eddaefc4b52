package api

import "encoding/json"

// envelope is the wrapper every API response uses. Callers of this package
// never see it: do() unwraps the data field before returning.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// envelopeMessage best-effort extracts the server message from a response
// body. Returns "" when the body is not a decodable envelope.
func envelopeMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

// Page is one page of a list endpoint's results.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
