package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
	ErrInvalidDate       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime       = errors.New("time must be formatted as HH:MM")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidStatus     = errors.New("unknown reservation status")
	ErrInvalidSource     = errors.New("unknown reservation source")
	ErrUnsafeTableName   = errors.New(`table name cannot contain the ", " separator`)
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusConfirmed Status = "confirmed"
	StatusNoShow    Status = "no-show"
	StatusCancelled Status = "cancelled"
)

// transitions is deliberately fully permissive: the floor staff corrects
// mistakes by moving reservations between any two statuses, including
// cancelled back to placed. Kept as an explicit table so a future guard has
// one place to live.
var transitions = map[Status][]Status{
	StatusPlaced:    {StatusPlaced, StatusConfirmed, StatusNoShow, StatusCancelled},
	StatusConfirmed: {StatusPlaced, StatusConfirmed, StatusNoShow, StatusCancelled},
	StatusNoShow:    {StatusPlaced, StatusConfirmed, StatusNoShow, StatusCancelled},
	StatusCancelled: {StatusPlaced, StatusConfirmed, StatusNoShow, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPlaced, StatusConfirmed, StatusNoShow, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }

// Active reports whether the reservation occupies its tables for conflict
// purposes. Only cancelled reservations release their tables.
func (s Status) Active() bool { return s != StatusCancelled }

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Source string

const (
	SourceManual Source = "manual"
	SourceWeb    Source = "web"
	SourceApp    Source = "handy"
)

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceManual, SourceWeb, SourceApp:
		return Source(s), nil
	}
	return "", ErrInvalidSource
}

const (
	DefaultDuration = 120
	DefaultType     = "Abendessen"

	DateLayout = "2006-01-02"

	// tableSeparator joins assigned table names into the persisted tables
	// column. Table names must never contain it.
	tableSeparator = ", "
)

// Reservation is a booking as the admin UI and the store see it. Tables is
// the denormalized ", "-joined list of table display names; empty means
// unassigned.
type Reservation struct {
	ID        uuid.UUID
	Date      string
	Time      string
	GuestName string
	Guests    int
	Tables    string
	Note      string
	Comment   string
	Status    Status
	Duration  int
	Phone     string
	Email     string
	Source    Source
	Type      string
	CreatedAt time.Time
}

// SplitTables decodes a persisted tables column into trimmed table names.
func SplitTables(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, tableSeparator)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// JoinTables encodes table names for persistence. Names containing the
// separator would be unrecoverable on the way back out, so they are rejected.
func JoinTables(names []string) (string, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if strings.Contains(n, tableSeparator) {
			return "", ErrUnsafeTableName
		}
		cleaned = append(cleaned, n)
	}
	return strings.Join(cleaned, tableSeparator), nil
}

func (r *Reservation) TableNames() []string {
	return SplitTables(r.Tables)
}

// EffectiveDuration falls back to the house default when the stored duration
// is missing or nonsensical.
func (r *Reservation) EffectiveDuration() int {
	if r.Duration <= 0 {
		return DefaultDuration
	}
	return r.Duration
}

// Draft is what create/update requests carry before the conflict guard and
// the store see them.
type Draft struct {
	Date      string
	Time      string
	GuestName string
	Guests    int
	Tables    string
	Note      string
	Comment   string
	Status    Status
	Duration  int
	Phone     string
	Email     string
	Source    Source
	Type      string
}

func (d *Draft) Validate() error {
	if strings.TrimSpace(d.GuestName) == "" {
		return ErrEmptyGuestName
	}
	if d.Guests < 1 {
		return ErrInvalidPartySize
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return ErrInvalidDate
	}
	if !validClock(d.Time) {
		return ErrInvalidTime
	}
	if d.Duration < 0 {
		return ErrInvalidDuration
	}
	if _, err := ParseStatus(string(d.Status)); err != nil {
		return err
	}
	if _, err := ParseSource(string(d.Source)); err != nil {
		return err
	}
	return nil
}

// Normalized applies the defaults the booking flow has always applied:
// 120 minutes, manual source, dinner type, placed status, "HH:MM:SS" times
// truncated to minute precision.
func (d Draft) Normalized() Draft {
	if d.Duration == 0 {
		d.Duration = DefaultDuration
	}
	if d.Status == "" {
		d.Status = StatusPlaced
	}
	if d.Source == "" {
		d.Source = SourceManual
	}
	if strings.TrimSpace(d.Type) == "" {
		d.Type = DefaultType
	}
	if len(d.Time) > 5 {
		d.Time = d.Time[:5]
	}
	d.GuestName = strings.TrimSpace(d.GuestName)
	return d
}

func validClock(s string) bool {
	if len(s) > 5 {
		s = s[:5]
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
