package domain

import "errors"

// Common domain errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event already exists")
	ErrStatsNotFound      = errors.New("stats not found")
	ErrStatsAlreadyExist  = errors.New("stats already exist for this event")
	ErrAnalyticsNotFound  = errors.New("analytics not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrInvalidAmount      = errors.New("invalid ticket sale amount")
	ErrInvalidStatus      = errors.New("invalid event status")
)
