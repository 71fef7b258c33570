package dto

// GenerateReportRequest represents the request to generate a report snapshot
type GenerateReportRequest struct {
	ReportType string `json:"report_type" binding:"required,oneof=sales attendance revenue demographic performance"`
	CreatedBy  string `json:"created_by" binding:"required"`
}
