package seed

import (
	"fmt"
	"testing"

	"github.com/AlisaFetisova-1/hw05-final/internal/database"
	"github.com/AlisaFetisova-1/hw05-final/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	t.Parallel()

	db := setupSeedDB(t)
	err := Seed(db, Options{
		NumUsers:    8,
		NumPosts:    30,
		NumComments: 20,
		SkipBcrypt:  true,
	})
	require.NoError(t, err)

	var users, groups, posts, comments, follows int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Group{}).Count(&groups)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Follow{}).Count(&follows)

	assert.Equal(t, int64(8), users)
	assert.Equal(t, int64(len(groupPresets)), groups)
	assert.Equal(t, int64(30), posts)
	assert.Equal(t, int64(20), comments)
	assert.Positive(t, follows)

	t.Run("fixed accounts exist", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.Where("username = ?", "leo").First(&user).Error)
	})

	t.Run("no self follows", func(t *testing.T) {
		var selfEdges int64
		db.Model(&models.Follow{}).Where("user_id = author_id").Count(&selfEdges)
		assert.Zero(t, selfEdges)
	})

	t.Run("groups reused on reseed", func(t *testing.T) {
		factory := NewFactory(db, Options{})
		again, err := factory.CreateGroups()
		require.NoError(t, err)
		assert.Len(t, again, len(groupPresets))

		var total int64
		db.Model(&models.Group{}).Count(&total)
		assert.Equal(t, int64(len(groupPresets)), total)
	})
}
