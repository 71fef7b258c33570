package domain

import "time"

// ReportType classifies a generated report
type ReportType string

const (
	ReportTypeSales       ReportType = "sales"
	ReportTypeAttendance  ReportType = "attendance"
	ReportTypeRevenue     ReportType = "revenue"
	ReportTypeDemographic ReportType = "demographic"
	ReportTypePerformance ReportType = "performance"
)

// ReportPeriod is the reporting window of a snapshot
type ReportPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// ReportAnalytics is the subset of analytics fields embedded in a report
type ReportAnalytics struct {
	UserAcquisitionRate float64          `json:"user_acquisition_rate"`
	RepeatCustomerRate  float64          `json:"repeat_customer_rate"`
	ConversionFunnel    ConversionFunnel `json:"conversion_funnel"`
}

// ReportData is the point-in-time payload of a report. Event and Stats may
// be nil when the referenced event does not exist.
type ReportData struct {
	Event     *Event          `json:"event"`
	Stats     *EventStats     `json:"stats"`
	Analytics ReportAnalytics `json:"analytics"`
}

// Report is an immutable point-in-time snapshot. Reports are only ever
// appended, never updated or deleted.
type Report struct {
	ID          string       `json:"id"`
	EventID     string       `json:"event_id"`
	ReportType  ReportType   `json:"report_type"`
	GeneratedAt time.Time    `json:"generated_at"`
	Period      ReportPeriod `json:"period"`
	Data        ReportData   `json:"data"`
	CreatedBy   string       `json:"created_by"`
}
