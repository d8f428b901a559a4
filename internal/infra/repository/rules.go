package repository

import (
	"context"
	"errors"
	"time"

	"booking-platform/internal/domain/schedule"
	"booking-platform/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultRuleColumns = `id, weekday, month, closed, first_checkin, last_checkin,
	lunch_break, lunch_break_from, lunch_break_duration, slot_duration, slot_spaces,
	slot_deposit_price, slot_invoice_price, location_id, created_at, updated_at`

const customRuleColumns = `id, date, closed, first_checkin, last_checkin,
	lunch_break, lunch_break_from, lunch_break_duration, slot_duration, slot_spaces,
	slot_deposit_price, slot_invoice_price, location_id, created_at, updated_at`

type RuleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

func (r *RuleRepository) CreateDefault(ctx context.Context, rule *schedule.DefaultRule) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO default_rules (id, weekday, month, closed, first_checkin, last_checkin,
			lunch_break, lunch_break_from, lunch_break_duration, slot_duration, slot_spaces,
			slot_deposit_price, slot_invoice_price, location_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		rule.ID, rule.Weekday.String(), rule.Month, rule.Rule.Closed,
		rule.Rule.FirstCheckin.MinutesFromMidnight(), rule.Rule.LastCheckin.MinutesFromMidnight(),
		rule.Rule.LunchBreak, rule.Rule.LunchBreakFrom.MinutesFromMidnight(), rule.Rule.LunchBreakDuration,
		rule.Rule.SlotDuration, rule.Rule.SlotSpaces,
		rule.Rule.SlotDepositPrice, rule.Rule.SlotInvoicePrice, rule.Rule.LocationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("default rule already exists for this weekday scope", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create default rule", err)
	}
	return nil
}

func (r *RuleRepository) UpdateDefault(ctx context.Context, rule *schedule.DefaultRule) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE default_rules
		SET weekday=$2, month=$3, closed=$4, first_checkin=$5, last_checkin=$6,
			lunch_break=$7, lunch_break_from=$8, lunch_break_duration=$9,
			slot_duration=$10, slot_spaces=$11, slot_deposit_price=$12,
			slot_invoice_price=$13, location_id=$14, updated_at=now()
		WHERE id=$1`,
		rule.ID, rule.Weekday.String(), rule.Month, rule.Rule.Closed,
		rule.Rule.FirstCheckin.MinutesFromMidnight(), rule.Rule.LastCheckin.MinutesFromMidnight(),
		rule.Rule.LunchBreak, rule.Rule.LunchBreakFrom.MinutesFromMidnight(), rule.Rule.LunchBreakDuration,
		rule.Rule.SlotDuration, rule.Rule.SlotSpaces,
		rule.Rule.SlotDepositPrice, rule.Rule.SlotInvoicePrice, rule.Rule.LocationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("default rule already exists for this weekday scope", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update default rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("default rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) DeleteDefault(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM default_rules WHERE id=$1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete default rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("default rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) FindDefaultByID(ctx context.Context, id uuid.UUID) (*schedule.DefaultRule, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+defaultRuleColumns+` FROM default_rules WHERE id=$1`, id)
	rule, err := scanDefaultRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("default rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find default rule", err)
	}
	return rule, nil
}

// FindDefaultsFor returns every default rule whose weekday scope covers the
// date, month-restricted and unrestricted alike. Precedence between them is
// the resolver's business.
func (r *RuleRepository) FindDefaultsFor(ctx context.Context, locationID int64, date time.Time) ([]*schedule.DefaultRule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+defaultRuleColumns+`
		FROM default_rules
		WHERE location_id=$1 AND weekday=$2 AND (month IS NULL OR month=$3)
		ORDER BY created_at`,
		locationID, schedule.WeekdayOf(date).String(), int(date.Month()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query default rules", err)
	}
	defer rows.Close()

	var result []*schedule.DefaultRule
	for rows.Next() {
		rule, err := scanDefaultRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan default rule", err)
		}
		result = append(result, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read default rules", err)
	}
	return result, nil
}

func (r *RuleRepository) CreateCustom(ctx context.Context, rule *schedule.CustomRule) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO custom_rules (id, date, closed, first_checkin, last_checkin,
			lunch_break, lunch_break_from, lunch_break_duration, slot_duration, slot_spaces,
			slot_deposit_price, slot_invoice_price, location_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		rule.ID, rule.Date, rule.Rule.Closed,
		rule.Rule.FirstCheckin.MinutesFromMidnight(), rule.Rule.LastCheckin.MinutesFromMidnight(),
		rule.Rule.LunchBreak, rule.Rule.LunchBreakFrom.MinutesFromMidnight(), rule.Rule.LunchBreakDuration,
		rule.Rule.SlotDuration, rule.Rule.SlotSpaces,
		rule.Rule.SlotDepositPrice, rule.Rule.SlotInvoicePrice, rule.Rule.LocationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("custom rule already exists for this date", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create custom rule", err)
	}
	return nil
}

func (r *RuleRepository) UpdateCustom(ctx context.Context, rule *schedule.CustomRule) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE custom_rules
		SET date=$2, closed=$3, first_checkin=$4, last_checkin=$5,
			lunch_break=$6, lunch_break_from=$7, lunch_break_duration=$8,
			slot_duration=$9, slot_spaces=$10, slot_deposit_price=$11,
			slot_invoice_price=$12, location_id=$13, updated_at=now()
		WHERE id=$1`,
		rule.ID, rule.Date, rule.Rule.Closed,
		rule.Rule.FirstCheckin.MinutesFromMidnight(), rule.Rule.LastCheckin.MinutesFromMidnight(),
		rule.Rule.LunchBreak, rule.Rule.LunchBreakFrom.MinutesFromMidnight(), rule.Rule.LunchBreakDuration,
		rule.Rule.SlotDuration, rule.Rule.SlotSpaces,
		rule.Rule.SlotDepositPrice, rule.Rule.SlotInvoicePrice, rule.Rule.LocationID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("custom rule already exists for this date", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update custom rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("custom rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) DeleteCustom(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM custom_rules WHERE id=$1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete custom rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("custom rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) FindCustomFor(ctx context.Context, locationID int64, date time.Time) (*schedule.CustomRule, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+customRuleColumns+`
		FROM custom_rules
		WHERE location_id=$1 AND date=$2`,
		locationID, schedule.DateOnly(date),
	)
	rule, err := scanCustomRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("custom rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find custom rule", err)
	}
	return rule, nil
}

func scanDefaultRule(row pgx.Row) (*schedule.DefaultRule, error) {
	var (
		rule        schedule.DefaultRule
		weekday     string
		first, last int
		lunchFrom   int
	)
	err := row.Scan(
		&rule.ID, &weekday, &rule.Month, &rule.Rule.Closed, &first, &last,
		&rule.Rule.LunchBreak, &lunchFrom, &rule.Rule.LunchBreakDuration,
		&rule.Rule.SlotDuration, &rule.Rule.SlotSpaces,
		&rule.Rule.SlotDepositPrice, &rule.Rule.SlotInvoicePrice, &rule.Rule.LocationID,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rule.Weekday = schedule.Weekday(weekday)
	rule.Rule.FirstCheckin = schedule.TimeOfDayFromMinutes(first)
	rule.Rule.LastCheckin = schedule.TimeOfDayFromMinutes(last)
	rule.Rule.LunchBreakFrom = schedule.TimeOfDayFromMinutes(lunchFrom)
	return &rule, nil
}

func scanCustomRule(row pgx.Row) (*schedule.CustomRule, error) {
	var (
		rule        schedule.CustomRule
		first, last int
		lunchFrom   int
	)
	err := row.Scan(
		&rule.ID, &rule.Date, &rule.Rule.Closed, &first, &last,
		&rule.Rule.LunchBreak, &lunchFrom, &rule.Rule.LunchBreakDuration,
		&rule.Rule.SlotDuration, &rule.Rule.SlotSpaces,
		&rule.Rule.SlotDepositPrice, &rule.Rule.SlotInvoicePrice, &rule.Rule.LocationID,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rule.Date = schedule.DateOnly(rule.Date)
	rule.Rule.FirstCheckin = schedule.TimeOfDayFromMinutes(first)
	rule.Rule.LastCheckin = schedule.TimeOfDayFromMinutes(last)
	rule.Rule.LunchBreakFrom = schedule.TimeOfDayFromMinutes(lunchFrom)
	return &rule, nil
}
