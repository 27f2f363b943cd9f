package workflow

import (
	"fmt"
	"testing"

	"assisthub/database"
	"assisthub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func seededUser(t *testing.T, db *gorm.DB, id string) models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.Where("id = ?", id).First(&user).Error)
	return user
}
