package models

// PaymentStatus is a closed enumeration of payment states.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentCanceled PaymentStatus = "canceled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCanceled:
		return true
	}
	return false
}

// Payment is a single balance top-up or tariff purchase.
type Payment struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}

// CategoryStat is one slice of the payments-by-category breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// ChartPoint is one point of a server-computed time series.
type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PaymentStats is the aggregated payments dashboard, derived server-side.
type PaymentStats struct {
	TotalAmount   float64        `json:"total_amount"`
	TotalCount    int64          `json:"total_count"`
	TopCategories []CategoryStat `json:"top_categories"`
	Daily         []ChartPoint   `json:"daily"`
}

// Empty reports whether there is nothing to chart; views render a
// "no data" state instead of an empty chart.
func (s PaymentStats) Empty() bool {
	return len(s.TopCategories) == 0
}
