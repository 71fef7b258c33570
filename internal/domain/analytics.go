package domain

// TicketTypeCount is one entry of the top-ticket-types ranking
type TicketTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ConversionFunnel holds the four funnel counters. Values are fixed at
// initialization and are not derived from ticket-sale activity.
type ConversionFunnel struct {
	PageViews         int `json:"page_views"`
	AddToCart         int `json:"add_to_cart"`
	CheckoutInitiated int `json:"checkout_initiated"`
	Completed         int `json:"completed"`
}

// Analytics is the per-event dashboard snapshot. This is placeholder data:
// a real provider can replace the placeholder service without touching
// callers.
type Analytics struct {
	EventID                string            `json:"event_id"`
	HourlyRevenue          map[int]string    `json:"hourly_revenue"`
	UserAcquisitionRate    float64           `json:"user_acquisition_rate"`
	RepeatCustomerRate     float64           `json:"repeat_customer_rate"`
	TopTicketTypes         []TicketTypeCount `json:"top_ticket_types"`
	GeographicDistribution map[string]int    `json:"geographic_distribution,omitempty"`
	DeviceTypes            map[string]int    `json:"device_types,omitempty"`
	ConversionFunnel       ConversionFunnel  `json:"conversion_funnel"`
}

// NewAnalytics creates an analytics snapshot with the fixed funnel constants
func NewAnalytics(eventID string) *Analytics {
	return &Analytics{
		EventID:             eventID,
		HourlyRevenue:       make(map[int]string),
		UserAcquisitionRate: 0,
		RepeatCustomerRate:  0,
		TopTicketTypes:      []TicketTypeCount{},
		ConversionFunnel: ConversionFunnel{
			PageViews:         1000,
			AddToCart:         300,
			CheckoutInitiated: 150,
			Completed:         100,
		},
	}
}
