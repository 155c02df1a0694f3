package database

import (
	"testing"

	"studymate_backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The schema must migrate on sqlite as well as mysql, since the test
// suites bootstrap their databases through Migrate. Driver-specific
// column defaults in model tags would break this.
func TestMigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migratetest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	user := model.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, db.Create(&user).Error)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
