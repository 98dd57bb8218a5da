package repositories

import (
	"time"

	"magazine-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	ListByArticle(articleID string) ([]models.Comment, error)
	SoftDelete(id string) error
	ListViewedCommentIDs(userID uint, articleID string) ([]string, error)
	UpsertView(userID uint, commentID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("deleted = ?", false).First(&comment, "id = ?", id).Error
	return &comment, err
}

func (r *commentRepository) ListByArticle(articleID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("article_id = ? AND deleted = ?", articleID, false).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) SoftDelete(id string) error {
	now := time.Now()
	result := r.db.Model(&models.Comment{}).
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

func (r *commentRepository) ListViewedCommentIDs(userID uint, articleID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CommentView{}).
		Joins("JOIN comments ON comments.id = comment_views.comment_id").
		Where("comment_views.user_id = ? AND comments.article_id = ?", userID, articleID).
		Pluck("comment_views.comment_id", &ids).Error
	return ids, err
}

func (r *commentRepository) UpsertView(userID uint, commentID string) error {
	view := models.CommentView{
		UserID:    userID,
		CommentID: commentID,
		ViewedAt:  time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&view).Error
}
