package domain

import (
	"context"
	"time"
)

// BreathingGuide 呼吸引导内容。Serial 是管理员手工分配的排序编号：
//   - 创建时全表唯一（含软删行）
//   - 更新时只和未软删的行比较，且换了值才校验
//
// 所以 serial 不能建数据库唯一索引（会挡住复用软删行的编号），唯一性靠
// 应用层先查后写，竞态窗口见 DESIGN.md。
type BreathingGuide struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Serial      int        `gorm:"not null;index" json:"serial"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Guide       string     `gorm:"type:text;not null" json:"guide"`
	Description string     `gorm:"type:text;not null" json:"description"`
	AudioURL    *string    `gorm:"column:audio_url;size:500" json:"audioUrl"`
	Duration    *int       `json:"duration"` // 秒，客户端探测后随表单提交
	IsFeatured  bool       `gorm:"not null;default:false" json:"isFeatured"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}

func (BreathingGuide) TableName() string { return "breathing_guides" }

type GuideRepository interface {
	// List 的 f.Search 若能解析为整数则按 serial 精确匹配，否则走子串搜索
	List(ctx context.Context, f ContentFilter) ([]BreathingGuide, error)
	FindByID(ctx context.Context, id int64) (*BreathingGuide, error)
	Create(ctx context.Context, g *BreathingGuide) error
	Update(ctx context.Context, id int64, updates map[string]any) (*BreathingGuide, error)
	SoftDelete(ctx context.Context, id int64) (*BreathingGuide, error)
	// SerialExists liveOnly=false 时连软删行一起算（创建用），true 只看未删行（更新用）
	SerialExists(ctx context.Context, serial int, liveOnly bool) (bool, error)
}
