package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/groceryhub/grocery-backend/internal/models"
	"github.com/groceryhub/grocery-backend/internal/repo"
)

type fakePublisher struct {
	events []map[string]any
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, _ string, event interface{}) error {
	m, ok := event.(map[string]any)
	if !ok {
		m = map[string]any{"event": event}
	}
	m["_topic"] = topic
	f.events = append(f.events, m)
	return nil
}

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Repo     *repo.GormRepo
	Products *ProductHTTP
	Orders   *OrderHTTP
	UOM      *UnitOfMeasureHTTP
	Reports  *ReportHTTP
	Events   *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UnitOfMeasure{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	r := repo.New(db)
	events := &fakePublisher{}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		Repo:     r,
		Products: &ProductHTTP{Repo: r, Producer: events},
		Orders:   &OrderHTTP{Repo: r, Producer: events},
		UOM:      &UnitOfMeasureHTTP{Repo: r},
		Reports:  &ReportHTTP{Repo: r},
		Events:   events,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}

func (env *testEnv) lastEvent() map[string]any {
	require.NotEmpty(env.T, env.Events.events)
	return env.Events.events[len(env.Events.events)-1]
}
