package domain

import (
	"context"
	"time"
)

// Blog 博客内容行。软删除：IsDeleted 置位 + DeletedAt 打点，行保留在库里，
// 默认查询全部排除（deleted=true 才带出来）。
// 注意 DeletedAt 故意不用 gorm.DeletedAt，否则已删行没法被显式查询。
type Blog struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	ImageURL    *string    `gorm:"column:image_url;size:500" json:"imageUrl"`
	IsFeatured  bool       `gorm:"not null;default:false" json:"isFeatured"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func (Blog) TableName() string { return "blogs" }

// ContentFilter 内容列表筛选，各条件独立 AND 组合。
type ContentFilter struct {
	Search         string
	FeaturedOnly   bool
	IncludeDeleted bool
}

type BlogRepository interface {
	List(ctx context.Context, f ContentFilter) ([]Blog, error)
	// FindByID 只返回未软删的行；软删行视同不存在
	FindByID(ctx context.Context, id int64) (*Blog, error)
	Create(ctx context.Context, b *Blog) error
	Update(ctx context.Context, id int64, updates map[string]any) (*Blog, error)
	SoftDelete(ctx context.Context, id int64) (*Blog, error)
}
