package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий справочных данных: виды спорта, площадки, корты.
// Данные принадлежат внешней подсистеме управления объектами, здесь
// они только читаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindCourtsBySport ищет корты по подстроке названия вида спорта
// (без учета регистра). Возвращаются только корты, пригодные для
// бронирования: активный корт на активной и одобренной площадке.
// Пустой результат — не ошибка.
func (r *Repository) FindCourtsBySport(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id AS court_id",
		"c.name AS court_name",
		"c.price_per_hour",
		"c.operating_hours_start",
		"c.operating_hours_end",
		"v.id AS venue_id",
		"v.name AS venue_name",
		"v.address",
		"v.short_location",
		"s.name AS sport_name",
	).
		From("courts c").
		Join("venues v ON c.venue_id = v.id").
		Join("sports s ON c.sport_id = s.id").
		Where(squirrel.ILike{"s.name": "%" + sportPattern + "%"}).
		Where(squirrel.Eq{"c.is_active": true}).
		Where(squirrel.Eq{"v.is_active": true}).
		Where(squirrel.Eq{"v.is_approved": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindCourtsBySport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindCourtsBySport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	listings := make([]*domain.CourtListing, 0)

	for rows.Next() {
		var listing domain.CourtListing

		err := rows.Scan(
			&listing.CourtID,
			&listing.CourtName,
			&listing.PricePerHour,
			&listing.OperatingHoursStart,
			&listing.OperatingHoursEnd,
			&listing.VenueID,
			&listing.VenueName,
			&listing.VenueAddress,
			&listing.ShortLocation,
			&listing.SportName,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: FindCourtsBySport - scan row: %v", ErrScanRow, err)
		}

		listings = append(listings, &listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindCourtsBySport - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}

// GetCourtByID получает корт по ID (включая неактивные: проверка
// пригодности для бронирования — забота вызывающего слоя)
func (r *Repository) GetCourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"sport_id",
		"name",
		"price_per_hour",
		"operating_hours_start",
		"operating_hours_end",
		"is_active",
	).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.VenueID,
		&court.SportID,
		&court.Name,
		&court.PricePerHour,
		&court.OperatingHoursStart,
		&court.OperatingHoursEnd,
		&court.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourtByID - scan court: %v", ErrScanRow, err)
	}

	return &court, nil
}

// ListSports возвращает все виды спорта из справочника
func (r *Repository) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("sports").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)

	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Name); err != nil {
			return nil, fmt.Errorf("%w: ListSports - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, &sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}
