// Package models holds the records mirrored from the listing platform's REST
// API. The client never owns these records: every value is a snapshot of the
// server's representation at the time of the last successful request.
package models

// City is a reference-book record used to locate properties.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// District is a reference-book record subordinate to a city server-side;
// the client sees it flat.
type District struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Feature is a property amenity ("balcony", "parking", ...).
type Feature struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
