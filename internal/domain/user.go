package domain

import (
	"context"
	"time"
)

// 角色 / 状态枚举（与前端下拉一致）
const (
	RoleAdmin = "admin"
	RoleUser  = "user"

	StatusRegular = "regular"
	StatusPremium = "premium"
)

func ValidRole(r string) bool   { return r == RoleAdmin || r == RoleUser }
func ValidStatus(s string) bool { return s == StatusRegular || s == StatusPremium }

// User 账号记录。PasswordHash 只在服务端参与比对，永不进 JSON。
// 账号是硬删除（与内容行的软删除不同，产品决策）。
type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Role         string     `gorm:"size:16;not null;default:user" json:"role"`
	Status       string     `gorm:"size:16;not null;default:regular" json:"status"`
	Phone        *string    `gorm:"size:20" json:"phone"`
	Address      *string    `gorm:"type:text" json:"address"`
	LastWatched  *time.Time `json:"lastWatched"`
	LastRead     *time.Time `json:"lastRead"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserFilter 列表筛选：Search 对 name/email 做子串匹配，Role/Status 精确等值。
type UserFilter struct {
	Search string
	Role   string
	Status string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f UserFilter) ([]User, error)
	Update(ctx context.Context, id int64, updates map[string]any) (*User, error)
	UpdateRole(ctx context.Context, id int64, role string) (*User, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*User, error)
	MarkWatched(ctx context.Context, id int64) (*User, error)
	MarkRead(ctx context.Context, id int64) (*User, error)
	Delete(ctx context.Context, id int64) error
}
