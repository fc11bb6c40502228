package response

import (
	"github.com/gottliebdinh/moggi-admin/internal/domain/guest"
)

type GuestHistoryResponse struct {
	Visited   int `json:"visited"`
	NoShow    int `json:"noShow"`
	Cancelled int `json:"cancelled"`
}

func FromGuestHistory(h guest.History) GuestHistoryResponse {
	return GuestHistoryResponse{
		Visited:   h.Visited,
		NoShow:    h.NoShow,
		Cancelled: h.Cancelled,
	}
}
