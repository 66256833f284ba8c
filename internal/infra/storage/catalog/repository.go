// Package catalog reads the service catalog: services, staff members and the
// staff_services link table.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/pkg/dbmetrics"
	"github.com/simplyseat/reservation-service/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"venue_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"capacity",
	"requires_staff",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения каталога услуг и сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает активную услугу по ID с проверкой принадлежности заведению
func (r *Repository) GetService(ctx context.Context, serviceID, venueID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "venue_id": venueID, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.VenueID,
		&service.Name,
		&service.Description,
		&service.DurationMinutes,
		&service.Price,
		&service.Capacity,
		&service.RequiresStaff,
		&service.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// GetStaffForService получает активных сотрудников, выполняющих услугу
func (r *Repository) GetStaffForService(ctx context.Context, serviceID int64) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sm.id",
		"sm.venue_id",
		"sm.name",
		"sm.is_active",
	).
		From("staff_services ss").
		Join("staff_members sm ON ss.staff_member_id = sm.id").
		Where(squirrel.Eq{"ss.service_id": serviceID, "sm.is_active": true}).
		OrderBy("sm.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffForService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffForService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(&member.ID, &member.VenueID, &member.Name, &member.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetStaffForService - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffForService - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// CanStaffPerformService проверяет, что активный сотрудник связан с услугой
func (r *Repository) CanStaffPerformService(ctx context.Context, staffMemberID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ss.id").
		From("staff_services ss").
		Join("staff_members sm ON ss.staff_member_id = sm.id").
		Where(squirrel.Eq{
			"ss.staff_member_id": staffMemberID,
			"ss.service_id":      serviceID,
			"sm.is_active":       true,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CanStaffPerformService - build select query: %v", ErrBuildQuery, err)
	}

	var linkID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&linkID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: CanStaffPerformService - scan link: %v", ErrScanRow, err)
	}

	return true, nil
}
