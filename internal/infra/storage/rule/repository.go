// Package rule reads weekly availability rules. The nullable venue/staff
// columns are resolved into a tagged domain.RuleScope here, at the storage
// boundary, so nothing downstream has to re-infer what a rule applies to.
package rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/pkg/dbmetrics"
	"github.com/simplyseat/reservation-service/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"venue_id",
	"staff_member_id",
	"day_of_week",
	"start_time",
	"end_time",
}

// Repository репозиторий для чтения правил доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetVenueRulesForDay получает правила заведения на день недели
// Пустой результат означает, что заведение в этот день закрыто
func (r *Repository) GetVenueRulesForDay(ctx context.Context, venueID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	return r.query(ctx, squirrel.Eq{
		"venue_id":        venueID,
		"staff_member_id": nil,
		"day_of_week":     dayOfWeek,
		"is_active":       true,
	})
}

// GetStaffRulesForDay получает правила сотрудника на день недели
func (r *Repository) GetStaffRulesForDay(ctx context.Context, staffMemberID int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	return r.query(ctx, squirrel.Eq{
		"staff_member_id": staffMemberID,
		"day_of_week":     dayOfWeek,
		"is_active":       true,
	})
}

// GetVenueRules получает правила заведения на все дни недели одним запросом
// Используется range-запросами, чтобы не ходить в БД за каждым днем
func (r *Repository) GetVenueRules(ctx context.Context, venueID int64) ([]*domain.AvailabilityRule, error) {
	return r.query(ctx, squirrel.Eq{
		"venue_id":        venueID,
		"staff_member_id": nil,
		"is_active":       true,
	})
}

// GetStaffRules получает правила нескольких сотрудников на все дни недели
// одним запросом. Используется range-запросами
func (r *Repository) GetStaffRules(ctx context.Context, staffMemberIDs []int64) ([]*domain.AvailabilityRule, error) {
	if len(staffMemberIDs) == 0 {
		return []*domain.AvailabilityRule{}, nil
	}
	return r.query(ctx, squirrel.Eq{
		"staff_member_id": staffMemberIDs,
		"is_active":       true,
	})
}

func (r *Repository) query(ctx context.Context, where squirrel.Eq) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(where).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func scanRule(rows *sql.Rows) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var venueID sql.NullInt64

	err := rows.Scan(
		&rule.ID,
		&venueID,
		&rule.StaffMemberID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
	)
	if err != nil {
		return nil, err
	}

	rule.VenueID = venueID.Int64

	// Тегируем scope один раз при чтении
	if rule.StaffMemberID != nil {
		rule.Scope = domain.RuleScopeStaff
	} else {
		rule.Scope = domain.RuleScopeVenue
	}

	return &rule, nil
}
