package services

import (
	"magazine-cms/models"
	"magazine-cms/repositories"
)

type InteractionService interface {
	MarkRead(userID uint, articleID string) error
	AddFavorite(userID uint, articleID string) error
	RemoveFavorite(userID uint, articleID string) error
	ListFavorites(userID uint) ([]models.Article, error)
}

type interactionService struct {
	interactionRepo repositories.InteractionRepository
}

func NewInteractionService(interactionRepo repositories.InteractionRepository) InteractionService {
	return &interactionService{interactionRepo: interactionRepo}
}

func (s *interactionService) MarkRead(userID uint, articleID string) error {
	return s.interactionRepo.MarkRead(userID, articleID)
}

func (s *interactionService) AddFavorite(userID uint, articleID string) error {
	return s.interactionRepo.AddFavorite(userID, articleID)
}

func (s *interactionService) RemoveFavorite(userID uint, articleID string) error {
	return s.interactionRepo.RemoveFavorite(userID, articleID)
}

func (s *interactionService) ListFavorites(userID uint) ([]models.Article, error) {
	return s.interactionRepo.ListFavoriteArticles(userID)
}
