package models

// TransactionType is the kind of deal a property is listed for.
type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRent
}

// PropertyStatus is the moderation state of a listing.
type PropertyStatus string

const (
	PropertyPending  PropertyStatus = "pending"
	PropertyActive   PropertyStatus = "active"
	PropertyRejected PropertyStatus = "rejected"
	PropertyArchived PropertyStatus = "archived"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyPending, PropertyActive, PropertyRejected, PropertyArchived:
		return true
	}
	return false
}

// Category is a property category reference ("apartment", "house", ...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Specs groups the numeric characteristics of a property.
type Specs struct {
	Rooms       int     `json:"rooms"`
	Area        float64 `json:"area"`
	Floor       int     `json:"floor"`
	TotalFloors int     `json:"total_floors"`
}

// Photo is a stored listing photo.
type Photo struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Location places a property on the map and in the reference books.
type Location struct {
	CityID     int64   `json:"city"`
	DistrictID int64   `json:"district"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// Property is the richest entity of the platform: a listing with nested
// specs, features, photos and location. The API returns it denormalized,
// so no client-side joins are needed.
type Property struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        Category        `json:"category"`
	Price           float64         `json:"price"`
	TransactionType TransactionType `json:"transaction_type"`
	Specs           Specs           `json:"specs"`
	Features        []Feature       `json:"features"`
	Photos          []Photo         `json:"photos"`
	Location        Location        `json:"location"`
	Status          PropertyStatus  `json:"status"`
	CreatedAt       string          `json:"created_at"`
}
