package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"zenzone-admin/internal/domain"
)

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

// List 条件独立 AND 组合；默认把软删行过滤掉
func (r *BlogRepo) List(ctx context.Context, f domain.ContentFilter) ([]domain.Blog, error) {
	q := r.db.WithContext(ctx).Model(&domain.Blog{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR body LIKE ?", like, like, like)
	}
	if !f.IncludeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if f.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	var blogs []domain.Blog
	if err := q.Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// FindByID 软删行视同不存在
func (r *BlogRepo) FindByID(ctx context.Context, id int64) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.WithContext(ctx).First(&b, "id = ? AND is_deleted = ?", id, false).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepo) Create(ctx context.Context, b *domain.Blog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Update 只打补丁：updates 里没有的列保持原值；软删行拒绝更新
func (r *BlogRepo) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Blog, error) {
	updates["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&domain.Blog{}).
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

// SoftDelete 二次删除命中不了未删行，按 ErrNotFound 报
func (r *BlogRepo) SoftDelete(ctx context.Context, id int64) (*domain.Blog, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&domain.Blog{}).
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

// get 不管软删状态，内部回读用
func (r *BlogRepo) get(ctx context.Context, id int64) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
