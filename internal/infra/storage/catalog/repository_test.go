package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	return NewRepository(db), mock, func() { db.Close() }
}

func courtListingColumns() []string {
	return []string{
		"court_id", "court_name", "price_per_hour", "operating_hours_start", "operating_hours_end",
		"venue_id", "venue_name", "address", "short_location", "sport_name",
	}
}

func TestFindCourtsBySport_CaseInsensitiveSubstring(t *testing.T) {
	repo, mock, closeFn := newMock(t)
	defer closeFn()

	rows := sqlmock.NewRows(courtListingColumns()).
		AddRow(int64(1), "Court 1", 60.0, "06:00", "22:00", int64(1), "Sports Complex A", "12 Riverside Ave", "Riverside", "Badminton")

	mock.ExpectQuery("SELECT .+ FROM courts c JOIN venues v ON c.venue_id = v.id JOIN sports s ON c.sport_id = s.id WHERE s.name ILIKE \\$1 AND c.is_active = \\$2 AND v.is_active = \\$3 AND v.is_approved = \\$4").
		WithArgs("%badminton%", true, true, true).
		WillReturnRows(rows)

	listings, err := repo.FindCourtsBySport(context.Background(), "badminton")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	if listings[0].CourtName != "Court 1" || listings[0].SportName != "Badminton" {
		t.Fatalf("listing scanned incorrectly: %+v", listings[0])
	}
	if listings[0].OperatingHoursStart != "06:00" {
		t.Fatalf("operating hours scanned incorrectly: %s", listings[0].OperatingHoursStart)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindCourtsBySport_EmptyResult(t *testing.T) {
	repo, mock, closeFn := newMock(t)
	defer closeFn()

	mock.ExpectQuery("SELECT .+ FROM courts c").
		WillReturnRows(sqlmock.NewRows(courtListingColumns()))

	listings, err := repo.FindCourtsBySport(context.Background(), "curling")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected empty slice, got %d listings", len(listings))
	}
}

func TestGetCourtByID(t *testing.T) {
	repo, mock, closeFn := newMock(t)
	defer closeFn()

	rows := sqlmock.NewRows([]string{
		"id", "venue_id", "sport_id", "name", "price_per_hour",
		"operating_hours_start", "operating_hours_end", "is_active",
	}).AddRow(int64(1), int64(1), int64(1), "Court 1", 60.0, "06:00", "22:00", true)

	mock.ExpectQuery("SELECT .+ FROM courts WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	court, err := repo.GetCourtByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if court.Name != "Court 1" || court.PricePerHour != 60.0 {
		t.Fatalf("court scanned incorrectly: %+v", court)
	}
	if !court.IsActive {
		t.Fatalf("is_active flag lost in scan")
	}
}

func TestGetCourtByID_NotFound(t *testing.T) {
	repo, mock, closeFn := newMock(t)
	defer closeFn()

	mock.ExpectQuery("SELECT .+ FROM courts WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "venue_id", "sport_id", "name", "price_per_hour",
			"operating_hours_start", "operating_hours_end", "is_active",
		}))

	_, err := repo.GetCourtByID(context.Background(), 404)
	if err != ErrCourtNotFound {
		t.Fatalf("expected ErrCourtNotFound, got %v", err)
	}
}

func TestListSports_OrderedByName(t *testing.T) {
	repo, mock, closeFn := newMock(t)
	defer closeFn()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(int64(1), "Badminton").
		AddRow(int64(2), "Tennis")

	mock.ExpectQuery("SELECT id, name FROM sports ORDER BY name ASC").
		WillReturnRows(rows)

	sports, err := repo.ListSports(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(sports) != 2 {
		t.Fatalf("expected 2 sports, got %d", len(sports))
	}
	if sports[0].Name != "Badminton" {
		t.Fatalf("unexpected first sport: %s", sports[0].Name)
	}
}
