package models

// Stats holds platform-wide totals recomputed from the ledger on demand.
// Money totals are in cents.
type Stats struct {
	TotalEvents        int `json:"total_events"`
	TotalTickets       int `json:"total_tickets"`
	TicketsUsed        int `json:"tickets_used"`
	GrossSales         int `json:"gross_sales"`
	NetRevenue         int `json:"net_revenue"`
	TotalFeesCollected int `json:"total_fees_collected"`
}

// EventStats holds the per-event rollup shown on the organizer dashboard
type EventStats struct {
	EventID       int64  `json:"event_id"`
	EventName     string `json:"event_name"`
	TicketsIssued int    `json:"tickets_issued"`
	TicketsUsed   int    `json:"tickets_used"`
	GrossSales    int    `json:"gross_sales"`
	NetRevenue    int    `json:"net_revenue"`
	FeesCollected int    `json:"fees_collected"`
}
