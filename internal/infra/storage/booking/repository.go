package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её — так
// проверка доступности и вставка выполняются атомарно в usecase
// создания бронирования.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"court_id",
			"booking_date",
			"start_time",
			"end_time",
			"total_price",
			"status",
		).
		Values(
			booking.UserID,
			booking.CourtID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.TotalPrice,
			booking.Status,
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

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

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

// GetByCourtAndDate получает все неотмененные бронирования корта на дату.
// Внутри транзакции добавляет FOR UPDATE: строки блокируются на время
// проверки доступности, чтобы конкурентное создание не вставило
// пересекающийся слот.
func (r *Repository) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetDetailsByUserID получает историю бронирований пользователя (любой
// статус) с денормализованными данными корта, площадки и вида спорта.
// Сортировка: сначала самые свежие (дата DESC, время начала DESC).
func (r *Repository) GetDetailsByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.court_id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"b.total_price",
		"b.status",
		"b.cancelled_at",
		"b.created_at",
		"b.updated_at",
		"c.name AS court_name",
		"v.name AS venue_name",
		"v.address AS venue_address",
		"s.name AS sport_name",
	).
		From("bookings b").
		Join("courts c ON b.court_id = c.id").
		Join("venues v ON c.venue_id = v.id").
		Join("sports s ON c.sport_id = s.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC, b.start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.BookingDetail, 0)

	for rows.Next() {
		var detail domain.BookingDetail
		var cancelledAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.CourtID,
			&detail.Date,
			&detail.StartTime,
			&detail.EndTime,
			&detail.TotalPrice,
			&detail.Status,
			&cancelledAt,
			&createdAt,
			&updatedAt,
			&detail.CourtName,
			&detail.VenueName,
			&detail.VenueAddress,
			&detail.SportName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetDetailsByUserID - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			detail.CancelledAt = &cancelledAt.Time
		}
		detail.CreatedAt = createdAt.Time
		detail.UpdatedAt = updatedAt.Time

		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByUserID - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// CancelByOwner отменяет бронирование одним защищенным UPDATE:
// статус меняется, только если бронирование существует, принадлежит
// пользователю и еще не отменено. Возвращает false, если ни одна строка
// не изменилась — вызывающий не может отличить "не найдено", "чужое" и
// "уже отменено", и это сделано намеренно.
func (r *Repository) CancelByOwner(ctx context.Context, bookingID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bookingID}).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CancelByOwner - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CancelByOwner - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CancelByOwner - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

var bookingColumns = []string{
	"id",
	"user_id",
	"court_id",
	"booking_date",
	"start_time",
	"end_time",
	"total_price",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourtID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalPrice,
		&booking.Status,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
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
