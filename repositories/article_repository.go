package repositories

import (
	"context"
	"time"

	"magazine-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	ListByIssue(ctx context.Context, month, year *int) ([]models.Article, error)
	ListSiblings(month, year int) ([]models.Article, error)
	Update(article *models.Article) error
	UpdatePosition(id string, position int) error
	SoftDelete(id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&article, "id = ?", id).Error
	return &article, err
}

// ListByIssue returns non-deleted articles for the given issue, plus evergreen
// "list"-keyword articles regardless of issue. A nil month or year means the
// issue could not be resolved and only evergreens are returned. Order is
// display position ascending with newest-first tie-break.
func (r *articleRepository) ListByIssue(ctx context.Context, month, year *int) ([]models.Article, error) {
	var articles []models.Article

	evergreen := `keywords::text LIKE ?`
	query := r.db.WithContext(ctx).Where("deleted = ?", false)
	if month != nil && year != nil {
		query = query.Where("(month = ? AND year = ?) OR "+evergreen, *month, *year, `%"list"%`)
	} else {
		query = query.Where(evergreen, `%"list"%`)
	}

	err := query.
		Order("display_position ASC NULLS FIRST").
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

// ListSiblings returns the non-deleted articles already assigned to an issue,
// sorted the way the position policy expects them.
func (r *articleRepository) ListSiblings(month, year int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Where("deleted = ? AND month = ? AND year = ?", false, month, year).
		Order("display_position ASC NULLS FIRST").
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) UpdatePosition(id string, position int) error {
	result := r.db.Model(&models.Article{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("display_position", position)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) SoftDelete(id string) error {
	now := time.Now()
	result := r.db.Model(&models.Article{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{"deleted": true, "deleted_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
