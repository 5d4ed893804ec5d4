package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
)

func TestRun_SeedsOnceOnly(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	require.NoError(t, Run(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	// Second boot leaves the catalog alone
	require.NoError(t, Run(db))
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	var blazer models.Product
	require.NoError(t, db.Where("name = ?", "Structured Linen Blazer").First(&blazer).Error)
	assert.Equal(t, 18900, blazer.PriceCents)
	assert.True(t, blazer.IsFeatured)
}
