package adminController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/khushi161014/studio-treta/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/admins", GetAllAdmins(db))
	r.GET("/admin/admin-management/pending", ListPendingAdmins(db))
	r.POST("/admin/admin-management/approve", ApproveAdmin(db))
	r.POST("/admin/admin-management/reject", RejectAdmin(db))
	return r
}

func seedAdmins(t *testing.T, db *gorm.DB) {
	t.Helper()
	admins := []models.Admin{
		{Email: "lead@studio-treta.test", Name: "Lead", Approved: true},
		{Email: "new@studio-treta.test", Name: "New", Approved: false},
	}
	for i := range admins {
		require.NoError(t, db.Create(&admins[i]).Error)
	}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetAllAdmins(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedAdmins(t, db)

	req := httptest.NewRequest(http.MethodGet, "/admin/admins", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var admins []models.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &admins))
	assert.Len(t, admins, 2)
}

func TestListPendingAdmins(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedAdmins(t, db)

	req := httptest.NewRequest(http.MethodGet, "/admin/admin-management/pending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pending []models.Admin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "new@studio-treta.test", pending[0].Email)
}

func TestApproveAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedAdmins(t, db)

	rec := postJSON(r, "/admin/admin-management/approve", `{"email": "new@studio-treta.test"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var admin models.Admin
	require.NoError(t, db.Where("email = ?", "new@studio-treta.test").First(&admin).Error)
	assert.True(t, admin.Approved)

	rec = postJSON(r, "/admin/admin-management/approve", `{"email": "ghost@studio-treta.test"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(r, "/admin/admin-management/approve", `{"email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedAdmins(t, db)

	rec := postJSON(r, "/admin/admin-management/reject", `{"email": "new@studio-treta.test"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rec = postJSON(r, "/admin/admin-management/reject", `{"email": "new@studio-treta.test"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postJSON(r, "/admin/admin-management/reject", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
