package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"upskill/config"
	"upskill/database"
	courseRoutes "upskill/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDbSeq int64

// setupTestApp wires the route table against a fresh in-memory database
// and swaps it into the global handle the controllers read from.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:   "3000",
		JWTKey: "test-secret",
	}

	// A named shared-cache DSN keeps one schema across pooled connections
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

// apiResponse mirrors middleware.JsonResponse's envelope
type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest runs one request through the app and decodes the envelope
func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}

	return resp.StatusCode, parsed
}

// decodeData unmarshals the envelope's data field into out
func decodeData(t *testing.T, resp apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
