package models

// Banner is a promotional banner shown on the public site. Image holds the
// URL of the stored image; the binary itself is uploaded via multipart.
// Link and EndDate are optional.
type Banner struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Image   string  `json:"image"`
	Link    *string `json:"link"`
	EndDate *string `json:"end_date"`
}
