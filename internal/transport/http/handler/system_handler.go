package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"zenzone-admin/internal/core/database"
	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/transport/http/response"
)

type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler { return &SystemHandler{db: db} }

func (h *SystemHandler) MountAPI(rg *gin.RouterGroup) {
	rg.GET("/test-db", h.TestDB)
	rg.POST("/init-db", h.InitDB)
}

// TestDB 连通性探针。版本号拿不到不算失败，sqlite 没有 version() 函数
func (h *SystemHandler) TestDB(c *gin.Context) {
	ctx := c.Request.Context()
	if err := database.Ping(ctx, h.db); err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Database connection failed", err.Error())
		return
	}
	version, _ := database.ServerVersion(ctx, h.db)
	response.OK(c, gin.H{"message": "Database connection successful", "version": version})
}

// InitDB 手动触发建表，首次部署或关掉 auto_migrate 时用
func (h *SystemHandler) InitDB(c *gin.Context) {
	err := h.db.WithContext(c.Request.Context()).AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.BreathingGuide{},
	)
	if err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Database initialization failed", err.Error())
		return
	}
	response.OK(c, gin.H{"message": "Database initialized successfully"})
}
