package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/feature/upload"
	"zenzone-admin/internal/transport/http/response"
)

// Uploader 文件中转的出口，测试里换成桩
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (*upload.Result, error)
}

type uploadSlug struct {
	maxBytes   int64
	mimePrefix string
}

type UploadHandler struct {
	uploader Uploader
	slugs    map[string]uploadSlug
}

func NewUploadHandler(uploader Uploader, imageMaxMB, audioMaxMB int) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		slugs: map[string]uploadSlug{
			"blogImageUploader":           {maxBytes: int64(imageMaxMB) << 20, mimePrefix: "image/"},
			"breathingGuideAudioUploader": {maxBytes: int64(audioMaxMB) << 20, mimePrefix: "audio/"},
		},
	}
}

func (h *UploadHandler) MountAPI(rg *gin.RouterGroup) {
	rg.POST("/uploadthing", h.Upload)
}

// Upload POST /api/uploadthing?slug=…
// 大小和类型在本地先拦，不合规的文件不浪费一次外部调用
func (h *UploadHandler) Upload(c *gin.Context) {
	slug, ok := h.slugs[c.Query("slug")]
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Unknown upload slug")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "File is required")
		return
	}
	if fh.Size > slug.maxBytes {
		response.Fail(c, http.StatusBadRequest, "File exceeds size limit")
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, slug.mimePrefix) {
		response.Fail(c, http.StatusBadRequest, "Unsupported file type")
		return
	}
	f, err := fh.Open()
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	res, err := h.uploader.Upload(c.Request.Context(), fh.Filename, ct, data)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	response.OK(c, gin.H{"url": res.URL, "key": res.Key, "name": res.Name, "size": res.Size})
}
