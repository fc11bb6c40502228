package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type CapacityRuleResponse struct {
	ID              uuid.UUID `json:"id"`
	Days            []string  `json:"days"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Capacity        int       `json:"capacity"`
	IntervalMinutes int       `json:"interval_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

type ClosedDayResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type SettingsResponse struct {
	Rules      []CapacityRuleResponse `json:"rules"`
	ClosedDays []ClosedDayResponse    `json:"exceptions"`
}

func FromRule(r *schedule.CapacityRule) *CapacityRuleResponse {
	return &CapacityRuleResponse{
		ID:              r.ID,
		Days:            r.Days,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Capacity:        r.Capacity,
		IntervalMinutes: r.IntervalMinutes,
		CreatedAt:       r.CreatedAt,
	}
}

func FromClosedDay(d *schedule.ClosedDay) *ClosedDayResponse {
	return &ClosedDayResponse{
		ID:        d.ID,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
}

func FromSettings(s usecase.Settings) SettingsResponse {
	rules := make([]CapacityRuleResponse, 0, len(s.Rules))
	for i := range s.Rules {
		rules = append(rules, *FromRule(&s.Rules[i]))
	}
	closedDays := make([]ClosedDayResponse, 0, len(s.ClosedDays))
	for i := range s.ClosedDays {
		closedDays = append(closedDays, *FromClosedDay(&s.ClosedDays[i]))
	}
	return SettingsResponse{Rules: rules, ClosedDays: closedDays}
}
