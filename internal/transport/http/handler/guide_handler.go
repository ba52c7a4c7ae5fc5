package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/transport/http/response"
)

const serialTakenMsg = "Serial number already exists. Please use a unique serial number."

type GuideHandler struct {
	guides domain.GuideRepository
}

func NewGuideHandler(guides domain.GuideRepository) *GuideHandler {
	return &GuideHandler{guides: guides}
}

func (h *GuideHandler) MountAPI(rg *gin.RouterGroup) {
	rg.GET("/breathing-guides", h.List)
	rg.POST("/breathing-guides", h.Create)
	rg.GET("/breathing-guides/:id", h.Get)
	rg.PUT("/breathing-guides/:id", h.Update)
	rg.DELETE("/breathing-guides/:id", h.Delete)
}

// List GET /api/breathing-guides?featured=&deleted=&search=
// search 是纯整数时按编号精确匹配，否则在标题/简介/正文里做子串搜索
func (h *GuideHandler) List(c *gin.Context) {
	f := domain.ContentFilter{
		Search:         c.Query("search"),
		FeaturedOnly:   c.Query("featured") == "true",
		IncludeDeleted: c.Query("deleted") == "true",
	}
	guides, err := h.guides.List(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch breathing guides")
		return
	}
	if guides == nil {
		guides = []domain.BreathingGuide{}
	}
	response.OK(c, gin.H{"breathingGuides": guides})
}

func (h *GuideHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid breathing guide ID")
		return
	}
	guide, err := h.guides.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch breathing guide")
		return
	}
	if guide == nil {
		response.Fail(c, http.StatusNotFound, "Breathing guide not found")
		return
	}
	response.OK(c, gin.H{"guide": guide})
}

type createGuideIn struct {
	Serial      int     `json:"serial"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Guide       string  `json:"guide"`
	AudioURL    *string `json:"audioUrl"`
	Duration    *int    `json:"duration"`
	IsFeatured  bool    `json:"isFeatured"`
}

// Create 建档前查重：编号在全表范围内唯一，软删行占用的编号也不许复用
func (h *GuideHandler) Create(c *gin.Context) {
	var in createGuideIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Serial == 0 || in.Title == "" || in.Guide == "" || in.Description == "" {
		response.Fail(c, http.StatusBadRequest, "Serial, title, guide, and description are required")
		return
	}
	taken, err := h.guides.SerialExists(c.Request.Context(), in.Serial, false)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to create breathing guide")
		return
	}
	if taken {
		response.Fail(c, http.StatusBadRequest, serialTakenMsg)
		return
	}
	guide := &domain.BreathingGuide{
		Serial:      in.Serial,
		Title:       in.Title,
		Description: in.Description,
		Guide:       in.Guide,
		AudioURL:    in.AudioURL,
		Duration:    in.Duration,
		IsFeatured:  in.IsFeatured,
	}
	if err := h.guides.Create(c.Request.Context(), guide); err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to create breathing guide")
		return
	}
	response.OK(c, gin.H{"guide": guide})
}

type updateGuideIn struct {
	Serial      *int    `json:"serial"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Guide       *string `json:"guide"`
	AudioURL    *string `json:"audioUrl"`
	Duration    *int    `json:"duration"`
	IsFeatured  *bool   `json:"isFeatured"`
}

// Update 改编号时只跟在世的行查重：把编号改成某个软删行占用的值是允许的
func (h *GuideHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid breathing guide ID")
		return
	}
	var in updateGuideIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := c.Request.Context()
	cur, err := h.guides.FindByID(ctx, id)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to update breathing guide")
		return
	}
	if cur == nil {
		response.Fail(c, http.StatusNotFound, "Breathing guide not found")
		return
	}

	updates := map[string]any{}
	if in.Serial != nil && *in.Serial != 0 && *in.Serial != cur.Serial {
		taken, err := h.guides.SerialExists(ctx, *in.Serial, true)
		if err != nil {
			_ = c.Error(err)
			response.Fail(c, http.StatusInternalServerError, "Failed to update breathing guide")
			return
		}
		if taken {
			response.Fail(c, http.StatusBadRequest, serialTakenMsg)
			return
		}
		updates["serial"] = *in.Serial
	}
	if in.Title != nil && *in.Title != "" {
		updates["title"] = *in.Title
	}
	if in.Description != nil && *in.Description != "" {
		updates["description"] = *in.Description
	}
	if in.Guide != nil && *in.Guide != "" {
		updates["guide"] = *in.Guide
	}
	if in.AudioURL != nil {
		updates["audio_url"] = *in.AudioURL
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.IsFeatured != nil {
		updates["is_featured"] = *in.IsFeatured
	}

	guide, err := h.guides.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Breathing guide not found")
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to update breathing guide")
		return
	}
	response.OK(c, gin.H{"guide": guide})
}

func (h *GuideHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid breathing guide ID")
		return
	}
	guide, err := h.guides.SoftDelete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Breathing guide not found")
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to delete breathing guide")
		return
	}
	response.OK(c, gin.H{"message": "Breathing guide deleted successfully", "guide": guide})
}
