package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartbot-stats/internal/database/models"
)

// --- Mocks ---

// MockActivityRepository is a mock for database.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CountActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) CountGroups(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBanRepository is a mock for database.BanRepository
type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) ListBannedUsers(ctx context.Context) ([]models.BannedUser, error) {
	args := m.Called(ctx)
	if banned, ok := args.Get(0).([]models.BannedUser); ok {
		return banned, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAdminRepository is a mock for database.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) ListAdmins(ctx context.Context) ([]models.AdminRecord, error) {
	args := m.Called(ctx)
	if admins, ok := args.Get(0).([]models.AdminRecord); ok {
		return admins, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Helpers ---

type testDeps struct {
	activity *MockActivityRepository
	bans     *MockBanRepository
	admins   *MockAdminRepository
}

func newTestApp(t *testing.T, indexFile string) (*fiber.App, *testDeps) {
	t.Helper()
	deps := &testDeps{
		activity: new(MockActivityRepository),
		bans:     new(MockBanRepository),
		admins:   new(MockAdminRepository),
	}
	app := NewApp(false)
	RegisterRoutes(app, NewHandler(deps.activity, deps.bans, deps.admins, indexFile))
	return app, deps
}

func doRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// --- Tests ---

func TestStatsEndpoint(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.activity.On("CountActiveUsersSince", mock.Anything, mock.Anything).Return(int64(1), nil)
	deps.activity.On("CountUsers", mock.Anything).Return(int64(1), nil)
	deps.activity.On("CountGroups", mock.Anything).Return(int64(0), nil)

	resp := doRequest(t, app, "/api/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body StatsResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, APIOwner, body.APIOwner)
	assert.Equal(t, APIDev, body.APIDev)
	assert.Equal(t, int64(1), body.Stats.DailyUsers)
	assert.Equal(t, int64(1), body.Stats.WeeklyUsers)
	assert.Equal(t, int64(1), body.Stats.MonthlyUsers)
	assert.Equal(t, int64(1), body.Stats.YearlyUsers)
	assert.Equal(t, int64(1), body.Stats.TotalUsers)
	assert.Equal(t, int64(0), body.Stats.TotalGroups)
	assert.NotEmpty(t, body.Timestamp)

	// All four windowed counts plus the two totals hit the repository.
	deps.activity.AssertNumberOfCalls(t, "CountActiveUsersSince", 4)
}

func TestStatsEndpointSharedSnapshot(t *testing.T) {
	app, deps := newTestApp(t, "")

	var cutoffs []time.Time
	deps.activity.On("CountActiveUsersSince", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			cutoffs = append(cutoffs, args.Get(1).(time.Time))
		}).
		Return(int64(0), nil)
	deps.activity.On("CountUsers", mock.Anything).Return(int64(0), nil)
	deps.activity.On("CountGroups", mock.Anything).Return(int64(0), nil)

	resp := doRequest(t, app, "/api/stats")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Every windowed cutoff must derive from the same instant.
	require.Len(t, cutoffs, 4)
	base := cutoffs[0].Add(24 * time.Hour)
	assert.Equal(t, base, cutoffs[1].Add(7*24*time.Hour))
	assert.Equal(t, base, cutoffs[2].Add(30*24*time.Hour))
	assert.Equal(t, base, cutoffs[3].Add(365*24*time.Hour))
}

func TestStatsEndpointQueryError(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.activity.On("CountActiveUsersSince", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection reset"))

	resp := doRequest(t, app, "/api/stats")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to retrieve stats", body["error"])
	assert.NotContains(t, body["error"], "connection reset")
}

func TestBanlistEndpointEmpty(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.bans.On("ListBannedUsers", mock.Anything).Return([]models.BannedUser{}, nil)

	resp := doRequest(t, app, "/api/banlist")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body BanlistResponse
	decodeBody(t, resp, &body)
	assert.NotNil(t, body.BannedUsers)
	assert.Empty(t, body.BannedUsers)
	assert.Equal(t, 0, body.TotalBanned)
}

func TestBanlistEndpointDefaults(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.bans.On("ListBannedUsers", mock.Anything).Return([]models.BannedUser{
		{UserID: 555},
	}, nil)

	resp := doRequest(t, app, "/api/banlist")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body BanlistResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.BannedUsers, 1)
	assert.Equal(t, "555", body.BannedUsers[0].FullName)
	assert.Equal(t, "Undefined", body.BannedUsers[0].Reason)
	assert.Equal(t, "Undefined", body.BannedUsers[0].BanDate)
}

func TestBanlistEndpointQueryError(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.bans.On("ListBannedUsers", mock.Anything).Return(nil, errors.New("cursor timeout"))

	resp := doRequest(t, app, "/api/banlist")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to retrieve banlist", body["error"])
}

func TestAdminlistEndpointAlwaysHasOwner(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.admins.On("ListAdmins", mock.Anything).Return([]models.AdminRecord{}, nil)

	resp := doRequest(t, app, "/api/adminlist")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body AdminlistResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Admins, 1)
	assert.Equal(t, int64(7666341631), body.Admins[0].UserID)
	assert.Equal(t, "Owner", body.Admins[0].Title)
	assert.Equal(t, 1, body.TotalAdmins)
}

func TestAdminlistEndpointQueryError(t *testing.T) {
	app, deps := newTestApp(t, "")
	deps.admins.On("ListAdmins", mock.Anything).Return(nil, errors.New("no reachable servers"))

	resp := doRequest(t, app, "/api/adminlist")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to retrieve adminlist", body["error"])
}

func TestIndexEndpoint(t *testing.T) {
	indexFile := filepath.Join(t.TempDir(), "index.html")
	content := "<!DOCTYPE html><html><body>Stats</body></html>"
	require.NoError(t, os.WriteFile(indexFile, []byte(content), 0o644))

	app, _ := newTestApp(t, indexFile)
	resp := doRequest(t, app, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}

func TestIndexEndpointMissingAsset(t *testing.T) {
	app, _ := newTestApp(t, filepath.Join(t.TempDir(), "missing.html"))

	resp := doRequest(t, app, "/")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Index file not found", body["error"])
}
