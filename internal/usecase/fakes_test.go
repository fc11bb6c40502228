//go:build unit

package usecase_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/order"
	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/infra/repository"
)

type fakeReservationRepo struct {
	all          []reservation.Reservation
	byDate       []reservation.Reservation
	byID         *reservation.Reservation
	statusResult *reservation.Reservation

	findAllErr      error
	findByDateErr   error
	findByIDErr     error
	updateStatusErr error
	deleteErr       error

	updatedStatus reservation.Status
}

func (f *fakeReservationRepo) FindAll(context.Context) ([]reservation.Reservation, error) {
	return f.all, f.findAllErr
}

func (f *fakeReservationRepo) FindByDate(context.Context, string) ([]reservation.Reservation, error) {
	return f.byDate, f.findByDateErr
}

func (f *fakeReservationRepo) FindByDateLocked(context.Context, repository.DBTX, string) ([]reservation.Reservation, error) {
	return f.byDate, f.findByDateErr
}

func (f *fakeReservationRepo) FindByID(context.Context, repository.DBTX, uuid.UUID) (*reservation.Reservation, error) {
	return f.byID, f.findByIDErr
}

func (f *fakeReservationRepo) Create(_ context.Context, _ repository.DBTX, d reservation.Draft) (*reservation.Reservation, error) {
	return &reservation.Reservation{ID: uuid.New(), Date: d.Date, Time: d.Time, Status: d.Status}, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, d reservation.Draft) (*reservation.Reservation, error) {
	return &reservation.Reservation{ID: id, Date: d.Date, Time: d.Time, Status: d.Status}, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	f.updatedStatus = status
	return f.statusResult, f.updateStatusErr
}

func (f *fakeReservationRepo) Delete(context.Context, uuid.UUID) error {
	return f.deleteErr
}

type fakeSettingsRepo struct {
	rules      []schedule.CapacityRule
	closedDays []schedule.ClosedDay

	rulesErr      error
	closedDaysErr error
}

func (f *fakeSettingsRepo) FindAllRules(context.Context) ([]schedule.CapacityRule, error) {
	return f.rules, f.rulesErr
}

func (f *fakeSettingsRepo) FindAllClosedDays(context.Context) ([]schedule.ClosedDay, error) {
	return f.closedDays, f.closedDaysErr
}

func (f *fakeSettingsRepo) CreateRule(_ context.Context, rule schedule.CapacityRule) (*schedule.CapacityRule, error) {
	rule.ID = uuid.New()
	return &rule, nil
}

func (f *fakeSettingsRepo) UpdateRule(context.Context, schedule.CapacityRule) error { return nil }
func (f *fakeSettingsRepo) DeleteRule(context.Context, uuid.UUID) error             { return nil }

func (f *fakeSettingsRepo) CreateClosedDay(_ context.Context, date string) (*schedule.ClosedDay, error) {
	return &schedule.ClosedDay{ID: uuid.New(), Date: date}, nil
}

func (f *fakeSettingsRepo) DeleteClosedDay(context.Context, uuid.UUID) error { return nil }

type fakeTableRepo struct {
	tables []room.Table
	err    error
}

func (f *fakeTableRepo) FindAll(context.Context) ([]room.Table, error) {
	return f.tables, f.err
}

func (f *fakeTableRepo) FindByRoom(context.Context, uuid.UUID) ([]room.Table, error) {
	return f.tables, f.err
}

func (f *fakeTableRepo) Create(_ context.Context, roomID uuid.UUID, name string, capacity int) (*room.Table, error) {
	return &room.Table{ID: uuid.New(), RoomID: roomID, Name: name, Capacity: capacity}, nil
}

func (f *fakeTableRepo) Update(context.Context, uuid.UUID, string, int) error { return nil }
func (f *fakeTableRepo) Delete(context.Context, uuid.UUID) error              { return nil }

type fakeOrderRepo struct {
	orders  []order.Order
	created *order.Draft

	findErr   error
	updateErr error
}

func (f *fakeOrderRepo) FindByCreatedDate(context.Context, string) ([]order.Order, error) {
	return f.orders, f.findErr
}

func (f *fakeOrderRepo) Create(_ context.Context, d order.Draft) (*order.Order, error) {
	f.created = &d
	return &order.Order{ID: uuid.New(), OrderNumber: d.OrderNumber, Status: order.Status(d.Status)}, nil
}

func (f *fakeOrderRepo) UpdateStatus(context.Context, uuid.UUID, order.Status) error {
	return f.updateErr
}

type sentMail struct {
	to      string
	subject string
	html    string
}

// fakeSender records sends on a channel so tests can observe deliveries
// from detached goroutines.
type fakeSender struct {
	sent chan sentMail
	err  error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan sentMail, 8)}
}

func (f *fakeSender) Send(_ context.Context, to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent <- sentMail{to: to, subject: subject, html: html}
	return nil
}
