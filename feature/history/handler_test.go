package history_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"data-verifier/core/database"
	"data-verifier/core/reconcile"
	"data-verifier/core/storage/mocks"
	"data-verifier/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *history.Repository, *mocks.Client) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&history.Entry{}))

	repo := history.NewRepository(db)
	client := new(mocks.Client)

	app := fiber.New()
	feature := history.NewFeature(repo, client, "verification", zap.NewNop())
	require.NoError(t, feature.Load(app))

	return app, repo, client
}

func seedEntry(t *testing.T, repo *history.Repository, source, result string) *history.Entry {
	t.Helper()
	entry := history.NewEntry(source, "target.xlsx", result, reconcile.Summary{TotalKeysCompared: 1, Matches: 1})
	require.NoError(t, repo.Create(context.Background(), entry))
	return entry
}

func TestHandleListHistory(t *testing.T) {
	app, repo, _ := newTestApp(t)
	seedEntry(t, repo, "first.xlsx", "Result_1.xlsx")
	seedEntry(t, repo, "second.xlsx", "Result_2.xlsx")

	resp, err := app.Test(httptest.NewRequest("GET", "/history/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []history.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Len(t, entries, 2)
}

func TestHandleDeleteHistory(t *testing.T) {
	app, repo, client := newTestApp(t)
	entry := seedEntry(t, repo, "gone.xlsx", "Result_gone.xlsx")

	client.On("RemoveObject", mock.Anything, "verification", "results/Result_gone.xlsx", mock.Anything).
		Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/history/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	client.AssertExpectations(t)

	_, err = repo.Get(context.Background(), entry.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHandleDeleteHistory_NotFound(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/history/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
