package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/transport/http/response"
)

type BlogHandler struct {
	blogs domain.BlogRepository
}

func NewBlogHandler(blogs domain.BlogRepository) *BlogHandler { return &BlogHandler{blogs: blogs} }

func (h *BlogHandler) MountAPI(rg *gin.RouterGroup) {
	rg.GET("/blogs", h.List)
	rg.POST("/blogs", h.Create)
	rg.GET("/blogs/:id", h.Get)
	rg.PUT("/blogs/:id", h.Update)
	rg.DELETE("/blogs/:id", h.Delete)
}

// List GET /api/blogs?featured=&deleted=&search=
// 条件独立 AND 组合；不带 deleted=true 时永远看不到软删行
func (h *BlogHandler) List(c *gin.Context) {
	f := domain.ContentFilter{
		Search:         c.Query("search"),
		FeaturedOnly:   c.Query("featured") == "true",
		IncludeDeleted: c.Query("deleted") == "true",
	}
	blogs, err := h.blogs.List(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	response.OK(c, gin.H{"blogs": blogs})
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}
	blog, err := h.blogs.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch blog")
		return
	}
	if blog == nil {
		response.Fail(c, http.StatusNotFound, "Blog not found")
		return
	}
	response.OK(c, gin.H{"blog": blog})
}

type createBlogIn struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Body        string  `json:"body"`
	ImageURL    *string `json:"imageUrl"`
	IsFeatured  bool    `json:"isFeatured"`
}

func (h *BlogHandler) Create(c *gin.Context) {
	var in createBlogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Title == "" || in.Description == "" || in.Body == "" {
		response.Fail(c, http.StatusBadRequest, "Title, description, and body are required")
		return
	}
	blog := &domain.Blog{
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		ImageURL:    in.ImageURL,
		IsFeatured:  in.IsFeatured,
	}
	if err := h.blogs.Create(c.Request.Context(), blog); err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to create blog")
		return
	}
	response.OK(c, gin.H{"blog": blog})
}

// updateBlogIn 全部指针：nil 表示调用方没给这个键。
// 文本字段空串视同省略（编辑表单的清空不应该擦掉正文）；
// imageUrl / isFeatured 是显式赋值语义，给了空串/false 也照常落库。
type updateBlogIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
	ImageURL    *string `json:"imageUrl"`
	IsFeatured  *bool   `json:"isFeatured"`
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}
	var in updateBlogIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	updates := map[string]any{}
	if in.Title != nil && *in.Title != "" {
		updates["title"] = *in.Title
	}
	if in.Description != nil && *in.Description != "" {
		updates["description"] = *in.Description
	}
	if in.Body != nil && *in.Body != "" {
		updates["body"] = *in.Body
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}
	blog, err := h.blogs.Update(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to update blog")
		return
	}
	response.OK(c, gin.H{"blog": blog})
}

// Delete 软删。已删过的行第二次删除按 404 报，不是幂等成功。
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid blog ID")
		return
	}
	blog, err := h.blogs.SoftDelete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Blog not found")
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to delete blog")
		return
	}
	response.OK(c, gin.H{"message": "Blog deleted successfully", "blog": blog})
}
