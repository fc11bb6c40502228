package request

import (
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
)

// UpsertRuleRequest carries a recurring capacity rule. Days are German
// weekday names, matching what the schedule stores.
type UpsertRuleRequest struct {
	Days            []string `json:"days" binding:"required,min=1"`
	StartTime       string   `json:"start_time" binding:"required"`
	EndTime         string   `json:"end_time" binding:"required"`
	Capacity        int      `json:"capacity" binding:"required,min=1"`
	IntervalMinutes int      `json:"interval_minutes" binding:"required,min=1"`
}

func (r UpsertRuleRequest) ToDomain() schedule.CapacityRule {
	return schedule.CapacityRule{
		Days:            r.Days,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Capacity:        r.Capacity,
		IntervalMinutes: r.IntervalMinutes,
	}
}

type CreateClosedDayRequest struct {
	Date string `json:"date" binding:"required"`
}
