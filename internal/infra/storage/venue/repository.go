package venue

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/simplyseat/reservation-service/internal/domain"
	"github.com/simplyseat/reservation-service/pkg/dbmetrics"
	"github.com/simplyseat/reservation-service/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"name",
	"type",
	"email",
	"phone",
	"address",
	"city",
	"postal_code",
	"country",
	"description",
	"booking_advance_hours",
	"latitude",
	"longitude",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заведениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заведений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активное заведение по ID
// Неактивные заведения считаются отсутствующими
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	venue, err := scanVenue(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return venue, nil
}

// List получает активные заведения с фильтрацией
//
// Location: только цифры — префикс почтового индекса, иначе LIKE по городу.
// Query: свободный поиск по названию и описанию.
func (r *Repository) List(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}

	if location := strings.TrimSpace(filter.Location); location != "" {
		if isDigits(location) {
			selectBuilder = selectBuilder.Where(squirrel.Like{"postal_code": location + "%"})
		} else {
			selectBuilder = selectBuilder.Where(squirrel.ILike{"city": "%" + location + "%"})
		}
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

func scanVenue(scan func(dest ...interface{}) error) (*domain.Venue, error) {
	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&venue.ID,
		&venue.Name,
		&venue.Type,
		&venue.Email,
		&venue.Phone,
		&venue.Address,
		&venue.City,
		&venue.PostalCode,
		&venue.Country,
		&venue.Description,
		&venue.BookingAdvanceHours,
		&venue.Latitude,
		&venue.Longitude,
		&venue.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
