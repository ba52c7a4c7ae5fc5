package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"zenzone-admin/internal/repo"
	"zenzone-admin/internal/transport/http/handler"
	mdw "zenzone-admin/internal/transport/http/middleware"
)

// Deps 路由装配需要的外部件，main 里建好传进来
type Deps struct {
	DB         *gorm.DB
	Uploader   handler.Uploader
	ImageMaxMB int
	AudioMaxMB int
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + 指标 + 静态接口文档
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFile("/api-docs", "./docs/openapi.yaml")

	users := repo.NewUserRepo(d.DB)
	blogs := repo.NewBlogRepo(d.DB)
	guides := repo.NewGuideRepo(d.DB)

	api := r.Group("/api")
	MountAll(api,
		handler.NewAuthHandler(users),
		handler.NewUserHandler(users),
		handler.NewBlogHandler(blogs),
		handler.NewGuideHandler(guides),
		handler.NewUploadHandler(d.Uploader, d.ImageMaxMB, d.AudioMaxMB),
		handler.NewSystemHandler(d.DB),
	)

	return r
}
