package utils

import (
	"testing"
	"time"
	"upskill/database"
	"upskill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSweepDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:sweepdb?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Exec("DELETE FROM enrollments").Error)

	database.Database = database.DbInstance{Db: db}
	return db
}

func TestSweepCompletedEnrollments(t *testing.T) {
	db := setupSweepDb(t)

	rows := []models.Enrollment{
		{UserID: 1, CourseID: 1, Progress: 100, Status: models.StatusEnrolled, EnrollmentDate: time.Now()},
		{UserID: 1, CourseID: 2, Progress: 40, Status: models.StatusEnrolled, EnrollmentDate: time.Now()},
		{UserID: 2, CourseID: 1, Progress: 100, Status: models.StatusCompleted, EnrollmentDate: time.Now()},
	}
	require.NoError(t, db.Create(&rows).Error)

	SweepCompletedEnrollments()

	var swept models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, 1).First(&swept).Error)
	assert.Equal(t, models.StatusCompleted, swept.Status)

	var untouched models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, 2).First(&untouched).Error)
	assert.Equal(t, models.StatusEnrolled, untouched.Status)

	var count int64
	db.Model(&models.Enrollment{}).Where("status = ?", models.StatusCompleted).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestSweepNoEligibleRows(t *testing.T) {
	db := setupSweepDb(t)

	row := models.Enrollment{UserID: 3, CourseID: 1, Progress: 99.9, Status: models.StatusEnrolled, EnrollmentDate: time.Now()}
	require.NoError(t, db.Create(&row).Error)

	SweepCompletedEnrollments()

	var got models.Enrollment
	require.NoError(t, db.Where("user_id = ?", 3).First(&got).Error)
	assert.Equal(t, models.StatusEnrolled, got.Status)
}
