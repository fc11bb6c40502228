package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
)

const reservationColumns = `id, date, time, guest_name, guests,
	COALESCE(tables, ''), COALESCE(note, ''), COALESCE(comment, ''),
	status, duration, COALESCE(phone, ''), COALESCE(email, ''),
	source, type, created_at`

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		ORDER BY date ASC, time ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) FindByDate(ctx context.Context, date string) ([]reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE date = $1
		ORDER BY time ASC`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by date", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// FindByDateLocked reads a date's reservations under FOR UPDATE so the
// conflict guard's check-then-write runs serialized per date.
func (r *ReservationRepository) FindByDateLocked(ctx context.Context, tx DBTX, date string) ([]reservation.Reservation, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE date = $1
		ORDER BY time ASC
		FOR UPDATE`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservations for date", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row := db.QueryRow(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx DBTX, d reservation.Draft) (*reservation.Reservation, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO reservations
			(date, time, guest_name, guests, tables, note, comment, status,
			 duration, phone, email, source, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+reservationColumns,
		d.Date, d.Time, d.GuestName, d.Guests, d.Tables, d.Note, d.Comment,
		string(d.Status), d.Duration, d.Phone, d.Email, string(d.Source), d.Type)

	res, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx DBTX, id uuid.UUID, d reservation.Draft) (*reservation.Reservation, error) {
	row := tx.QueryRow(ctx, `
		UPDATE reservations SET
			date = $2, time = $3, guest_name = $4, guests = $5, tables = $6,
			note = $7, comment = $8, status = $9, duration = $10, phone = $11,
			email = $12, source = $13, type = $14
		WHERE id = $1
		RETURNING `+reservationColumns,
		id, d.Date, d.Time, d.GuestName, d.Guests, d.Tables, d.Note, d.Comment,
		string(d.Status), d.Duration, d.Phone, d.Email, string(d.Source), d.Type)

	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE reservations SET status = $2
		WHERE id = $1
		RETURNING `+reservationColumns,
		id, string(status))

	res, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

type reservationRow interface {
	Scan(dest ...any) error
}

func scanReservation(row reservationRow) (*reservation.Reservation, error) {
	var res reservation.Reservation
	var status, source string
	err := row.Scan(
		&res.ID, &res.Date, &res.Time, &res.GuestName, &res.Guests,
		&res.Tables, &res.Note, &res.Comment, &status, &res.Duration,
		&res.Phone, &res.Email, &source, &res.Type, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.Status = reservation.Status(status)
	res.Source = reservation.Source(source)
	if len(res.Time) > 5 {
		res.Time = res.Time[:5] // store may carry HH:MM:SS
	}
	return &res, nil
}

func scanReservations(rows interface {
	reservationRow
	Next() bool
	Err() error
}) ([]reservation.Reservation, error) {
	var out []reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return out, nil
}
