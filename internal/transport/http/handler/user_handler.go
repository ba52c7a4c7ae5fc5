package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/transport/http/response"
)

type UserHandler struct {
	users domain.UserRepository
}

func NewUserHandler(users domain.UserRepository) *UserHandler { return &UserHandler{users: users} }

func (h *UserHandler) MountAPI(rg *gin.RouterGroup) {
	// 静态段 profile 和 :id 并存，gin 会优先匹配静态路由
	rg.GET("/users", h.List)
	rg.PUT("/users", h.BulkRole)
	rg.GET("/users/profile", h.Profile)
	rg.PUT("/users/profile", h.UpdateProfile)
	rg.POST("/users/profile", h.TouchActivity)
	rg.GET("/users/:id", h.Get)
	rg.PUT("/users/:id", h.Update)
	rg.DELETE("/users/:id", h.Delete)
}

// List GET /api/users?search=&role=&status=
// role/status 不是合法枚举值时当没传处理，不报错
func (h *UserHandler) List(c *gin.Context) {
	f := domain.UserFilter{Search: c.Query("search")}
	if r := c.Query("role"); domain.ValidRole(r) {
		f.Role = r
	}
	if s := c.Query("status"); domain.ValidStatus(s) {
		f.Status = s
	}
	users, err := h.users.List(c.Request.Context(), f)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	response.OK(c, gin.H{"users": users})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if u == nil {
		response.Fail(c, http.StatusNotFound, "User not found")
		return
	}
	response.OK(c, gin.H{"user": u})
}

type updateUserIn struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Status  string  `json:"status"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Update 文本与枚举字段空串视同省略；phone/address 显式赋值。
// 换邮箱先做友好查重，并发窗口由唯一索引兜底。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	var in updateUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	ctx := c.Request.Context()
	cur, err := h.users.FindByID(ctx, id)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if cur == nil {
		response.Fail(c, http.StatusNotFound, "User not found")
		return
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Email != "" && in.Email != cur.Email {
		taken, err := h.users.EmailExists(ctx, in.Email)
		if err != nil {
			_ = c.Error(err)
			response.Fail(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		if taken {
			response.Fail(c, http.StatusBadRequest, "Email already exists")
			return
		}
		updates["email"] = in.Email
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			response.Fail(c, http.StatusBadRequest, `Invalid role. Must be "admin" or "user"`)
			return
		}
		updates["role"] = in.Role
	}
	if in.Status != "" {
		if !domain.ValidStatus(in.Status) {
			response.Fail(c, http.StatusBadRequest, `Invalid status. Must be "regular" or "premium"`)
			return
		}
		updates["status"] = in.Status
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}

	u, err := h.users.Update(ctx, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			response.Fail(c, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, domain.ErrNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		default:
			_ = c.Error(err)
			response.Fail(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}
	response.OK(c, gin.H{"user": u})
}

// Delete 硬删，用户没有回收站语义
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	response.OK(c, gin.H{"message": "User deleted successfully"})
}

type bulkRoleIn struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// BulkRole PUT /api/users，管理台的快捷改角色入口，走裸错误外壳
func (h *UserHandler) BulkRole(c *gin.Context) {
	var in bulkRoleIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailRaw(c, http.StatusBadRequest, "User ID and role are required", nil)
		return
	}
	if in.UserID == 0 || in.Role == "" {
		response.FailRaw(c, http.StatusBadRequest, "User ID and role are required", nil)
		return
	}
	if !domain.ValidRole(in.Role) {
		response.FailRaw(c, http.StatusBadRequest, `Invalid role. Must be "admin" or "user"`, nil)
		return
	}
	u, err := h.users.UpdateRole(c.Request.Context(), in.UserID, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.FailRaw(c, http.StatusNotFound, "User not found", nil)
			return
		}
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, gin.H{"message": "User role updated successfully", "user": u})
}

// Profile GET /api/users/profile?userId=
func (h *UserHandler) Profile(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		response.FailRaw(c, http.StatusBadRequest, "User ID is required", nil)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.FailRaw(c, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}
	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if u == nil {
		response.FailRaw(c, http.StatusNotFound, "User not found", nil)
		return
	}
	response.OK(c, gin.H{"user": u})
}

type updateProfileIn struct {
	UserID  int64   `json:"userId" binding:"required"`
	Name    *string `json:"name" binding:"omitempty,min=2"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in updateProfileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailRaw(c, http.StatusBadRequest, "Validation failed", bindingDetails(err))
		return
	}
	updates := map[string]any{}
	if in.Name != nil && *in.Name != "" {
		updates["name"] = *in.Name
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	u, err := h.users.Update(c.Request.Context(), in.UserID, updates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.FailRaw(c, http.StatusNotFound, "User not found", nil)
			return
		}
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, gin.H{"message": "Profile updated successfully", "user": u})
}

type touchActivityIn struct {
	UserID int64  `json:"userId" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=watched read"`
}

// TouchActivity POST /api/users/profile，移动端回报最近一次观看/阅读时间
func (h *UserHandler) TouchActivity(c *gin.Context) {
	var in touchActivityIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailRaw(c, http.StatusBadRequest, "Validation failed", bindingDetails(err))
		return
	}
	var (
		u   *domain.User
		err error
	)
	if in.Type == "watched" {
		u, err = h.users.MarkWatched(c.Request.Context(), in.UserID)
	} else {
		u, err = h.users.MarkRead(c.Request.Context(), in.UserID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.FailRaw(c, http.StatusNotFound, "User not found", nil)
			return
		}
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, gin.H{"message": "Last " + in.Type + " updated successfully", "user": u})
}
