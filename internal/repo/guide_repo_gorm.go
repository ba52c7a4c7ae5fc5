package repo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"zenzone-admin/internal/domain"
)

type GuideRepo struct{ db *gorm.DB }

func NewGuideRepo(db *gorm.DB) *GuideRepo { return &GuideRepo{db: db} }

// List 搜索词能解析成整数时按 serial 精确匹配（管理员习惯按编号找），
// 否则对 title/description/guide 做子串 OR 搜索
func (r *GuideRepo) List(ctx context.Context, f domain.ContentFilter) ([]domain.BreathingGuide, error) {
	q := r.db.WithContext(ctx).Model(&domain.BreathingGuide{})
	if f.Search != "" {
		if n, err := strconv.Atoi(f.Search); err == nil {
			q = q.Where("serial = ?", n)
		} else {
			like := "%" + f.Search + "%"
			q = q.Where("title LIKE ? OR description LIKE ? OR guide LIKE ?", like, like, like)
		}
	}
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if f.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	var guides []domain.BreathingGuide
	if err := q.Order("created_at DESC").Find(&guides).Error; err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *GuideRepo) FindByID(ctx context.Context, id int64) (*domain.BreathingGuide, error) {
	var g domain.BreathingGuide
	err := r.db.WithContext(ctx).First(&g, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuideRepo) Create(ctx context.Context, g *domain.BreathingGuide) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuideRepo) Update(ctx context.Context, id int64, updates map[string]any) (*domain.BreathingGuide, error) {
	updates["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&domain.BreathingGuide{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.get(ctx, id)
}

func (r *GuideRepo) SoftDelete(ctx context.Context, id int64) (*domain.BreathingGuide, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&domain.BreathingGuide{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.get(ctx, id)
}

// SerialExists 创建走全表（软删行的编号也不许占用），更新只看未删行
func (r *GuideRepo) SerialExists(ctx context.Context, serial int, liveOnly bool) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.BreathingGuide{}).Where("serial = ?", serial)
	if liveOnly {
		q = q.Where("is_deleted = ?", false)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GuideRepo) get(ctx context.Context, id int64) (*domain.BreathingGuide, error) {
	var g domain.BreathingGuide
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
