package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/TRV-BookingEngine/pkg/psqlbuilder"
	"github.com/m04kA/TRV-BookingEngine/pkg/types"
)

// resourceColumns полный список колонок таблицы resources
var resourceColumns = []string{
	"id",
	"type",
	"name",
	"capacity",
	"max_occupancy",
	"price_per_night",
	"price_per_day",
	"price_per_person",
	"price",
	"unavailable_dates",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository read-only репозиторий каталога ресурсов.
// Каталог принадлежит админскому CRUD-сервису; движок бронирования
// его только читает. Чтения идут без блокировок - слегка устаревший
// блок-лист допустим, в отличие от подсчёта занятости.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByIDAndType получает ресурс по ID с проверкой типа.
// Используется, когда тип ресурса известен из контекста запроса
// (stayId обязан указывать на stay и т.д.)
func (r *Repository) GetByIDAndType(ctx context.Context, id int64, resourceType domain.ResourceType) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id, "type": resourceType}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndType - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDAndType - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// dateList сканирует постгресовый date[] в список календарных дат.
// lib/pq отдает элементы date[] текстом "YYYY-MM-DD" - ровно формат
// types.DateString, поэтому массив читается как строковый без прохода
// через time.Time.
type dateList []types.DateString

// Scan реализует sql.Scanner
func (d *dateList) Scan(src interface{}) error {
	var raw pq.StringArray
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("scan date array: %v", err)
	}

	dates := make([]types.DateString, 0, len(raw))
	for _, s := range raw {
		date, err := types.NewDateStringFromString(s)
		if err != nil {
			return fmt.Errorf("scan date array element %q: %v", s, err)
		}
		dates = append(dates, date)
	}

	*d = dates
	return nil
}

// scanResource сканирует одну строку в domain.Resource
func scanResource(row rowScanner) (*domain.Resource, error) {
	var res domain.Resource
	var unavailableDates dateList
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Type,
		&res.Name,
		&res.Capacity,
		&res.MaxOccupancy,
		&res.PricePerNight,
		&res.PricePerDay,
		&res.PricePerPerson,
		&res.Price,
		&unavailableDates,
		&res.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.UnavailableDates = unavailableDates
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
