package models

// DashboardData is the read-only landing dashboard, aggregated server-side.
type DashboardData struct {
	TotalProperties   int64        `json:"total_properties"`
	ActiveProperties  int64        `json:"active_properties"`
	PendingProperties int64        `json:"pending_properties"`
	TotalUsers        int64        `json:"total_users"`
	NewUsersToday     int64        `json:"new_users_today"`
	PaymentsToday     float64      `json:"payments_today"`
	PropertiesByDay   []ChartPoint `json:"properties_by_day"`
	UsersByDay        []ChartPoint `json:"users_by_day"`
}

// EskizBalance is the remaining SMS balance of the platform's Eskiz account.
type EskizBalance struct {
	Balance float64 `json:"balance"`
}
