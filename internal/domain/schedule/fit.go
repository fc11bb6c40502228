package schedule

import "github.com/gottliebdinh/moggi-admin/internal/domain/room"

// Fit classifies how well the selected tables' total capacity matches the
// party size. It is advisory: staff may seat a party at an UNDER selection,
// the UI only warns.
type Fit string

const (
	FitNoneSelected Fit = "none_selected"
	FitUnder        Fit = "under"
	FitExact        Fit = "exact"
	FitClose        Fit = "close"
	FitOver         Fit = "over"
)

// ClassifyFit grades selectedCapacity seats for partySize guests. CLOSE
// allows up to two spare seats; anything above that is OVER.
func ClassifyFit(selectedCapacity, partySize int) Fit {
	switch {
	case selectedCapacity <= 0:
		return FitNoneSelected
	case selectedCapacity < partySize:
		return FitUnder
	case selectedCapacity == partySize:
		return FitExact
	case selectedCapacity <= partySize+2:
		return FitClose
	default:
		return FitOver
	}
}

// SelectedCapacity sums the capacities of the named tables. Names that match
// no table contribute nothing; a stale assignment to a renamed or deleted
// table degrades to a lower capacity rather than an error.
func SelectedCapacity(tables []room.Table, selectedNames []string) int {
	total := 0
	for _, name := range selectedNames {
		for i := range tables {
			if tables[i].Name == name {
				total += tables[i].Capacity
				break
			}
		}
	}
	return total
}
