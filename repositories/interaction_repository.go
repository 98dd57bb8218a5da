package repositories

import (
	"time"

	"magazine-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	MarkRead(userID uint, articleID string) error
	AddFavorite(userID uint, articleID string) error
	RemoveFavorite(userID uint, articleID string) error
	ListFavoriteArticles(userID uint) ([]models.Article, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) MarkRead(userID uint, articleID string) error {
	read := models.ArticleRead{
		UserID:    userID,
		ArticleID: articleID,
		ReadAt:    time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error
}

func (r *interactionRepository) AddFavorite(userID uint, articleID string) error {
	favorite := models.Favorite{
		UserID:    userID,
		ArticleID: articleID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error
}

func (r *interactionRepository) RemoveFavorite(userID uint, articleID string) error {
	return r.db.
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Favorite{}).Error
}

func (r *interactionRepository) ListFavoriteArticles(userID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Joins("JOIN favorites ON favorites.article_id = articles.id").
		Where("favorites.user_id = ? AND articles.deleted = ?", userID, false).
		Order("favorites.created_at DESC").
		Find(&articles).Error
	return articles, err
}
