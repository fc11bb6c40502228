package response

import (
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
)

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type DefaultTimeResponse struct {
	Date string  `json:"date"`
	Time *string `json:"time"`
}

type TableAvailabilityResponse struct {
	Table     TableResponse `json:"table"`
	Available bool          `json:"available"`
}

type FitResponse struct {
	Fit string `json:"fit"`
}

func FromAvailability(list []schedule.TableAvailability) []TableAvailabilityResponse {
	out := make([]TableAvailabilityResponse, 0, len(list))
	for i := range list {
		out = append(out, TableAvailabilityResponse{
			Table:     *FromTable(&list[i].Table),
			Available: list[i].Available,
		})
	}
	return out
}
