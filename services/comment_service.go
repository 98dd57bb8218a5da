package services

import (
	"context"
	"errors"
	"sync"

	"magazine-cms/models"
	"magazine-cms/repositories"

	"github.com/rs/zerolog"
)

type CommentService interface {
	CreateComment(articleID string, userID uint, body string) (*models.Comment, error)
	ListComments(articleID string) ([]models.Comment, error)
	DeleteComment(id string, userID uint) error
	UnseenCount(articleID string, userID uint) (int, error)
	MarkViewed(userID uint, commentIDs []string) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	log         zerolog.Logger
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, log zerolog.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		log:         log.With().Str("component", "comment_service").Logger(),
	}
}

func (s *commentService) CreateComment(articleID string, userID uint, body string) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(context.Background(), articleID); err != nil {
		return nil, errors.New("article not found")
	}

	comment := &models.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListComments(articleID string) ([]models.Comment, error) {
	return s.commentRepo.ListByArticle(articleID)
}

func (s *commentService) DeleteComment(id string, userID uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return errors.New("unauthorized")
	}
	return s.commentRepo.SoftDelete(id)
}

// UnseenCount is the set difference between an article's comments and the
// ones this user has already viewed.
func (s *commentService) UnseenCount(articleID string, userID uint) (int, error) {
	comments, err := s.commentRepo.ListByArticle(articleID)
	if err != nil {
		return 0, err
	}

	viewedIDs, err := s.commentRepo.ListViewedCommentIDs(userID, articleID)
	if err != nil {
		return 0, err
	}

	viewed := make(map[string]bool, len(viewedIDs))
	for _, id := range viewedIDs {
		viewed[id] = true
	}

	unseen := 0
	for _, c := range comments {
		if !viewed[c.ID] {
			unseen++
		}
	}
	return unseen, nil
}

// MarkViewed upserts one view row per comment. The upserts are independent
// and idempotent, so they run concurrently; the first failure is reported
// after all of them finish.
func (s *commentService) MarkViewed(userID uint, commentIDs []string) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, commentID := range commentIDs {
		wg.Add(1)
		go func(commentID string) {
			defer wg.Done()
			if err := s.commentRepo.UpsertView(userID, commentID); err != nil {
				s.log.Warn().Err(err).Str("comment_id", commentID).Msg("view upsert failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(commentID)
	}

	wg.Wait()
	return firstErr
}
