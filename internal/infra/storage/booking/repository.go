package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/pkg/dbmetrics"
	"github.com/m04kA/TRV-BookingEngine/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"stay_id",
	"transportation_id",
	"activity_ids",
	"transfers",
	"check_in",
	"check_out",
	"number_of_people",
	"number_of_days",
	"status",
	"payment_status",
	"stay_total",
	"transportation_total",
	"sightseeing_total",
	"airport_transfer_total",
	"grand_total",
	"special_requests",
	"payment_ref",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (draft).
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	transfersJSON, err := json.Marshal(booking.Transfers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal transfers: %v", ErrMarshalTransfers, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"stay_id",
			"transportation_id",
			"activity_ids",
			"transfers",
			"check_in",
			"check_out",
			"number_of_people",
			"number_of_days",
			"status",
			"payment_status",
			"stay_total",
			"transportation_total",
			"sightseeing_total",
			"airport_transfer_total",
			"grand_total",
			"special_requests",
		).
		Values(
			booking.UserID,
			booking.StayID,
			booking.TransportationID,
			pq.Array(booking.ActivityIDs),
			transfersJSON,
			booking.CheckInDate,
			booking.CheckOutDate,
			booking.NumberOfPeople,
			booking.NumberOfDays,
			booking.Status,
			booking.PaymentStatus,
			booking.Pricing.StayTotal,
			booking.Pricing.TransportationTotal,
			booking.Pricing.SightseeingTotal,
			booking.Pricing.AirportTransferTotal,
			booking.Pricing.GrandTotal,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: pay/early-checkout меняют статус
	// и не должны гоняться друг с другом
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("check_in DESC, id DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOverlapping получает бронирования в учитываемых статусах
// (booked/confirmed/completed), пересекающиеся с диапазоном дат фильтра
// для одного ресурса маршрута.
//
// Для stay/transportation пересечение считается по полуоткрытому диапазону
// [check_in, check_out). Для sightseeing и transfer_vehicle занятость
// относится к одному дню - дню заезда, поэтому сравнивается только check_in.
//
// Если вызов происходит внутри транзакции, строки блокируются FOR UPDATE -
// это сериализует последовательность "проверка доступности + запись"
// для конкурентных бронирований одного ресурса.
func (r *Repository) GetOverlapping(ctx context.Context, filter domain.OverlapFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	countedStatuses := make([]string, len(domain.CountedStatuses))
	for i, s := range domain.CountedStatuses {
		countedStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": countedStatuses})

	switch filter.ResourceType {
	case domain.ResourceStay:
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"stay_id": filter.ResourceID}).
			Where(squirrel.Lt{"check_in": filter.RangeEnd}).
			Where(squirrel.Gt{"check_out": filter.RangeStart})

	case domain.ResourceTransportation:
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"transportation_id": filter.ResourceID}).
			Where(squirrel.Lt{"check_in": filter.RangeEnd}).
			Where(squirrel.Gt{"check_out": filter.RangeStart})

	case domain.ResourceSightseeing:
		selectBuilder = selectBuilder.
			Where("? = ANY(activity_ids)", filter.ResourceID).
			Where(squirrel.GtOrEq{"check_in": filter.RangeStart}).
			Where(squirrel.Lt{"check_in": filter.RangeEnd})

	case domain.ResourceTransferVehicle:
		containment, err := json.Marshal([]map[string]int64{{"vehicleId": filter.ResourceID}})
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlapping - marshal containment: %v", ErrBuildQuery, err)
		}
		selectBuilder = selectBuilder.
			Where("transfers @> ?::jsonb", string(containment)).
			Where(squirrel.GtOrEq{"check_in": filter.RangeStart}).
			Where(squirrel.Lt{"check_in": filter.RangeEnd})
	}

	// Исключаем собственное бронирование при перепроверке существующего
	if filter.ExcludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeBookingID})
	}

	selectBuilder = selectBuilder.OrderBy("id ASC")

	// Внутри транзакции блокируем найденные строки до коммита
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update обновляет изменяемые поля draft-бронирования: даты, состав маршрута,
// количество гостей и пересчитанный снапшот цены
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	transfersJSON, err := json.Marshal(booking.Transfers)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal transfers: %v", ErrMarshalTransfers, err)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("stay_id", booking.StayID).
		Set("transportation_id", booking.TransportationID).
		Set("activity_ids", pq.Array(booking.ActivityIDs)).
		Set("transfers", transfersJSON).
		Set("check_in", booking.CheckInDate).
		Set("check_out", booking.CheckOutDate).
		Set("number_of_people", booking.NumberOfPeople).
		Set("number_of_days", booking.NumberOfDays).
		Set("stay_total", booking.Pricing.StayTotal).
		Set("transportation_total", booking.Pricing.TransportationTotal).
		Set("sightseeing_total", booking.Pricing.SightseeingTotal).
		Set("airport_transfer_total", booking.Pricing.AirportTransferTotal).
		Set("grand_total", booking.Pricing.GrandTotal).
		Set("special_requests", booking.SpecialRequests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Update", query, args)
}

// UpdateStatus переводит бронирование из ожидаемого статуса в новый.
// Предикат по исходному статусу делает переход атомарным: конкурентная
// смена статуса между чтением и обновлением не затрет чужой переход.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingEligibleRow(ctx, executor, "UpdateStatus", query, args)
}

// MarkPaid переводит бронирование в booked/paid и сохраняет ссылку на платеж
func (r *Repository) MarkPaid(ctx context.Context, id int64, paymentRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusBooked).
		Set("payment_status", domain.PaymentPaid).
		Set("payment_ref", paymentRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "MarkPaid", query, args)
}

// Cancel отменяет бронирование с указанием причины.
// Предикат по статусу не дает отменить бронирование, успевшее стать
// терминальным после проверки на уровне сервиса.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.CancellableStatuses}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingEligibleRow(ctx, executor, "Cancel", query, args)
}

// UpdatePaymentStatus обновляет платежный статус бронирования (возврат средств)
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdatePaymentStatus", query, args)
}

// Shorten сокращает диапазон дат бронирования (early checkout).
// Снапшот цены не трогаем: это изменение расписания, а не перерасчет.
func (r *Repository) Shorten(ctx context.Context, id int64, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("check_out", booking.CheckOutDate).
		Set("number_of_days", booking.NumberOfDays).
		Set("status", booking.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Shorten - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Shorten", query, args)
}

// Delete удаляет бронирование (физическое удаление, только для draft)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

// execExpectingRow выполняет запрос и возвращает ErrBookingNotFound,
// если ни одна строка не была затронута
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// execExpectingEligibleRow выполняет статусно-защищенный UPDATE.
// Вызывающая сторона уже прочитала строку, поэтому ноль затронутых
// строк означает несовпадение статусного предиката, а не отсутствие
// бронирования.
func (r *Repository) execExpectingEligibleRow(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStaleStatus
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в domain.Booking
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var activityIDs pq.Int64Array
	var transfersJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.StayID,
		&booking.TransportationID,
		&activityIDs,
		&transfersJSON,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.NumberOfPeople,
		&booking.NumberOfDays,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.Pricing.StayTotal,
		&booking.Pricing.TransportationTotal,
		&booking.Pricing.SightseeingTotal,
		&booking.Pricing.AirportTransferTotal,
		&booking.Pricing.GrandTotal,
		&booking.SpecialRequests,
		&booking.PaymentRef,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ActivityIDs = activityIDs
	if len(transfersJSON) > 0 {
		if err := json.Unmarshal(transfersJSON, &booking.Transfers); err != nil {
			return nil, err
		}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
