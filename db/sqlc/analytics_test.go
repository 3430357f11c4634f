package sqlc_test

import (
	"context"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"

	"github.com/mahdiarv/seabattle-backend/db/sqlc"
)

func testServerInet(t *testing.T) pqtype.Inet {
	t.Helper()

	_, ipnet, err := net.ParseCIDR("192.168.1.10/24")
	if err != nil {
		t.Fatal(err)
	}
	return pqtype.Inet{IPNet: *ipnet, Valid: true}
}

func TestAnalyticsIncrementGamesCreatedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	inet := testServerInet(t)
	analytics := sqlc.NewDbManager(sqlc.New(db)).Analytics

	mock.ExpectExec(`INSERT INTO server_analytics \(server_ip, games_created_count\)`).
		WithArgs(inet).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := analytics.IncrementGamesCreatedCount(ctx, inet); err != nil {
		t.Fatal(err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestAnalyticsGetGamesFinishedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	inet := testServerInet(t)
	analytics := sqlc.NewAnalyticsManager(sqlc.New(db))

	mock.ExpectExec(`INSERT INTO server_analytics \(server_ip, games_finished_count\)`).
		WithArgs(inet).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT games_finished_count FROM server_analytics WHERE server_ip = \$1`).
		WithArgs(inet).
		WillReturnRows(sqlmock.NewRows([]string{"games_finished_count"}).AddRow(int64(4)))

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := analytics.IncrementGamesFinishedCount(ctx, inet); err != nil {
		t.Fatal(err)
	}

	gamesFinished, err := analytics.GetGamesFinishedCount(ctx, inet)
	if err != nil {
		t.Fatal(err)
	}
	if gamesFinished != 4 {
		t.Fatalf("expected number of finished games: %d\tgot: %d", 4, gamesFinished)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
