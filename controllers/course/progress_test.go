package controllers_test

import (
	"net/http"
	"testing"
	controllers "upskill/controllers/course"
	"upskill/database"
	"upskill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressInsertsThenUpdates(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics")

	// No enrollment yet: upsert creates one with the supplied values
	code, _ := doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id":   4,
		"course_id": course.ID,
		"progress":  30,
	})
	require.Equal(t, http.StatusOK, code)

	var enrollment models.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", 4, course.ID).First(&enrollment).Error)
	assert.EqualValues(t, 30, enrollment.Progress)
	assert.Equal(t, models.StatusEnrolled, enrollment.Status)

	// Same pair again: the row is modified in place
	code, _ = doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id":   4,
		"course_id": course.ID,
		"progress":  80,
		"status":    models.StatusCompleted,
	})
	require.Equal(t, http.StatusOK, code)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", 4, course.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", 4, course.ID).First(&enrollment).Error)
	assert.EqualValues(t, 80, enrollment.Progress)
	assert.Equal(t, models.StatusCompleted, enrollment.Status)
}

func TestUpdateProgressAcceptsZero(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics")

	code, _ := doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id":   4,
		"course_id": course.ID,
		"progress":  0,
	})
	assert.Equal(t, http.StatusOK, code)
}

func TestUpdateProgressMissingFields(t *testing.T) {
	app := setupTestApp(t)

	code, resp := doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id": 4,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Status)
}

func TestGetUserProgressChart(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics")

	code, _ := doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id":   6,
		"course_id": course.ID,
		"progress":  55,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodGet, "/api/user-progress/6", nil)
	require.Equal(t, http.StatusOK, code)

	var chart struct {
		Labels   []string  `json:"labels"`
		Progress []float64 `json:"progress"`
	}
	decodeData(t, resp, &chart)
	require.Len(t, chart.Labels, 1)
	assert.Equal(t, "Go Basics", chart.Labels[0])
	assert.EqualValues(t, 55, chart.Progress[0])
}

func TestGetUserProgressChartNoEnrollments(t *testing.T) {
	app := setupTestApp(t)

	code, resp := doRequest(t, app, http.MethodGet, "/api/user-progress/6", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, resp.Status)
}

func TestGetProgressRows(t *testing.T) {
	app := setupTestApp(t)
	course := seedCourse(t, "Go Basics")

	code, _ := doRequest(t, app, http.MethodPost, "/api/progress", map[string]interface{}{
		"user_id":   6,
		"course_id": course.ID,
		"progress":  25,
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodGet, "/api/progress/6", nil)
	require.Equal(t, http.StatusOK, code)

	var rows []controllers.ProgressRow
	decodeData(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, course.ID, rows[0].CourseID)
	assert.EqualValues(t, 25, rows[0].Progress)
	assert.Equal(t, models.StatusEnrolled, rows[0].Status)
}

func TestGetProgressRowsEmpty(t *testing.T) {
	app := setupTestApp(t)

	code, resp := doRequest(t, app, http.MethodGet, "/api/progress/6", nil)
	require.Equal(t, http.StatusOK, code)

	var rows []controllers.ProgressRow
	decodeData(t, resp, &rows)
	assert.Empty(t, rows)
}
