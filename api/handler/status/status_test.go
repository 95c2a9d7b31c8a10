package status

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/log"
	"github.com/clawpad/clawpad/orm"
	dbconfig "github.com/clawpad/clawpad/orm/config"
)

func newApp(db *orm.Database) *fiber.App {
	base := common.NewBaseHandler(db, &config.Config{}, log.NewDiscardLogger())
	app := fiber.New()
	NewStatusHandler(base).Register(app)
	return app
}

func getStatus(t *testing.T, app *fiber.App) StatusResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func newPingMockDB(t *testing.T) (*orm.Database, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// gorm pings once while opening
	mock.ExpectPing()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return orm.NewDatabase(gormDB, &dbconfig.Config{}), mock
}

func TestGetStatusWithoutDatabase(t *testing.T) {
	config.SetBuildInfo("v1.2.3", "abc123")

	res := getStatus(t, newApp(nil))
	require.Equal(t, "v1.2.3", res.Version)
	require.Equal(t, "abc123", res.CommitHash)
	require.False(t, res.LeaderboardEnabled)
	require.Equal(t, DatabaseDisabled, res.Database)
}

func TestGetStatusDatabaseReachable(t *testing.T) {
	db, mock := newPingMockDB(t)
	mock.ExpectPing()

	res := getStatus(t, newApp(db))
	require.True(t, res.LeaderboardEnabled)
	require.Equal(t, DatabaseOK, res.Database)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatusDatabaseUnavailable(t *testing.T) {
	db, mock := newPingMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	res := getStatus(t, newApp(db))
	require.True(t, res.LeaderboardEnabled)
	require.Equal(t, DatabaseUnavailable, res.Database)
	require.NoError(t, mock.ExpectationsWereMet())
}
