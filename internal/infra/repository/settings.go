package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
)

// SettingsRepository persists capacity rules and closed-day exceptions. The
// days column keeps the historical format: a JSON array of German weekday
// names serialized into a text column.
type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) FindAllRules(ctx context.Context) ([]schedule.CapacityRule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, days, start_time, end_time, capacity, interval_minutes, created_at
		FROM capacity_rules
		ORDER BY start_time ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list capacity rules", err)
	}
	defer rows.Close()

	var rules []schedule.CapacityRule
	for rows.Next() {
		var rule schedule.CapacityRule
		var days string
		if err := rows.Scan(&rule.ID, &days, &rule.StartTime, &rule.EndTime,
			&rule.Capacity, &rule.IntervalMinutes, &rule.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan capacity rule row", err)
		}
		if err := json.Unmarshal([]byte(days), &rule.Days); err != nil {
			return nil, infra.WrapRepoErr("failed to decode capacity rule days", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read capacity rule rows", err)
	}
	return rules, nil
}

func (r *SettingsRepository) CreateRule(ctx context.Context, rule schedule.CapacityRule) (*schedule.CapacityRule, error) {
	days, err := json.Marshal(rule.Days)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode capacity rule days", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO capacity_rules (days, start_time, end_time, capacity, interval_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		string(days), rule.StartTime, rule.EndTime, rule.Capacity, rule.IntervalMinutes)

	if err := row.Scan(&rule.ID, &rule.CreatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to create capacity rule", err)
	}
	return &rule, nil
}

func (r *SettingsRepository) UpdateRule(ctx context.Context, rule schedule.CapacityRule) error {
	days, err := json.Marshal(rule.Days)
	if err != nil {
		return infra.WrapRepoErr("failed to encode capacity rule days", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE capacity_rules SET
			days = $2, start_time = $3, end_time = $4, capacity = $5, interval_minutes = $6
		WHERE id = $1`,
		rule.ID, string(days), rule.StartTime, rule.EndTime, rule.Capacity, rule.IntervalMinutes)
	if err != nil {
		return infra.WrapRepoErr("failed to update capacity rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("capacity rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SettingsRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM capacity_rules WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete capacity rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("capacity rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SettingsRepository) FindAllClosedDays(ctx context.Context) ([]schedule.ClosedDay, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, date, created_at
		FROM exceptions
		ORDER BY date ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list exceptions", err)
	}
	defer rows.Close()

	var days []schedule.ClosedDay
	for rows.Next() {
		var d schedule.ClosedDay
		if err := rows.Scan(&d.ID, &d.Date, &d.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan exception row", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read exception rows", err)
	}
	return days, nil
}

func (r *SettingsRepository) CreateClosedDay(ctx context.Context, date string) (*schedule.ClosedDay, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO exceptions (date)
		VALUES ($1)
		RETURNING id, date, created_at`, date)

	var d schedule.ClosedDay
	if err := row.Scan(&d.ID, &d.Date, &d.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("exception already exists for date", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create exception", err)
	}
	return &d, nil
}

func (r *SettingsRepository) DeleteClosedDay(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exceptions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete exception", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("exception not found", nil, infra.KindNotFound)
	}
	return nil
}
