package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/domain"
	"zenzone-admin/internal/transport/http/response"
	"zenzone-admin/pkg/utils"
)

type AuthHandler struct {
	users domain.UserRepository
}

func NewAuthHandler(users domain.UserRepository) *AuthHandler { return &AuthHandler{users: users} }

func (h *AuthHandler) MountAPI(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.Signup)
	rg.POST("/auth/signin", h.Signin)
}

type signupIn struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required,min=2"`
	Role     string  `json:"role" binding:"omitempty,oneof=admin user"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var in signupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailRaw(c, http.StatusBadRequest, "Validation failed", bindingDetails(err))
		return
	}
	ctx := c.Request.Context()
	taken, err := h.users.EmailExists(ctx, in.Email)
	if err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if taken {
		response.FailRaw(c, http.StatusConflict, "Email already registered", nil)
		return
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		Status:       domain.StatusRegular,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := h.users.Create(ctx, u); err != nil {
		// 并发窗口里撞上唯一索引也按已注册报
		if errors.Is(err, domain.ErrEmailTaken) {
			response.FailRaw(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.OK(c, gin.H{"message": "User created successfully", "user": u})
}

type signinIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signin 查无此人和密码不对返回同一句话，不让调用方探测邮箱是否注册
func (h *AuthHandler) Signin(c *gin.Context) {
	var in signinIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailRaw(c, http.StatusBadRequest, "Validation failed", bindingDetails(err))
		return
	}
	u, err := h.users.FindByEmail(c.Request.Context(), in.Email)
	if err != nil {
		_ = c.Error(err)
		response.FailRaw(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		response.FailRaw(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	response.OK(c, gin.H{"message": "Authentication successful", "user": u})
}
