package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"magazine-cms/models"
	"magazine-cms/repositories"

	"github.com/rs/zerolog"
)

// requestTimeout caps list and detail reads; callers get ErrRequestTimeout
// instead of a hung request.
const requestTimeout = 8 * time.Second

var ErrRequestTimeout = errors.New("request timed out")

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	ListArticles(ctx context.Context, params models.ArticleListParams, userID uint) ([]models.Article, IssueContext, error)
	UpdateArticle(id string, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(id string) error
	ApplyOrder(assignments []models.PositionAssignment) bool
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	issues      IssueService
	log         zerolog.Logger
}

func NewArticleService(articleRepo repositories.ArticleRepository, issues IssueService, log zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		issues:      issues,
		log:         log.With().Str("component", "article_service").Logger(),
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest) (*models.Article, error) {
	month, year := ParseIssueString(req.Issue)

	article := &models.Article{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Summary:     req.Summary,
		Author:      req.Author,
		Keywords:    req.Keywords,
		ImageURL:    req.ImageURL,
		SourceURL:   req.SourceURL,
		Month:       month,
		Year:        year,
	}

	if month != nil && year != nil {
		position := s.positionFor(req.Keywords, *month, *year, "")
		article.DisplayPosition = &position
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrRequestTimeout
		}
		return nil, err
	}
	return article, nil
}

// ListArticles resolves the issue context for the viewer, fetches the issue's
// articles together with evergreen "list" articles, and applies the optional
// substring search over title, description, author and keywords.
func (s *articleService) ListArticles(ctx context.Context, params models.ArticleListParams, userID uint) ([]models.Article, IssueContext, error) {
	issue := s.issues.Resolve(params.Issue, userID)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	articles, err := s.articleRepo.ListByIssue(ctx, issue.Month, issue.Year)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, issue, ErrRequestTimeout
		}
		return nil, issue, err
	}

	if params.Search != "" {
		articles = filterArticles(articles, params.Search)
	}
	return articles, issue, nil
}

func filterArticles(articles []models.Article, search string) []models.Article {
	needle := strings.ToLower(search)
	filtered := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if articleMatches(a, needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func articleMatches(a models.Article, needle string) bool {
	if strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) ||
		strings.Contains(strings.ToLower(a.Author), needle) {
		return true
	}
	for _, k := range a.Keywords {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}

func (s *articleService) UpdateArticle(id string, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Summary != nil {
		article.Summary = *req.Summary
	}
	if req.Author != nil {
		article.Author = *req.Author
	}
	if req.ImageURL != nil {
		article.ImageURL = *req.ImageURL
	}
	if req.SourceURL != nil {
		article.SourceURL = *req.SourceURL
	}

	repositioned := false
	if req.Keywords != nil {
		article.Keywords = *req.Keywords
		repositioned = true
	}
	if req.Issue != nil {
		article.Month, article.Year = ParseIssueString(*req.Issue)
		repositioned = true
	}

	// Re-tagging or moving issues re-runs the position policy against the
	// article's new siblings.
	if repositioned {
		if article.Month != nil && article.Year != nil {
			position := s.positionFor(article.Keywords, *article.Month, *article.Year, article.ID)
			article.DisplayPosition = &position
		} else {
			article.DisplayPosition = nil
		}
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) DeleteArticle(id string) error {
	return s.articleRepo.SoftDelete(id)
}

// positionFor loads the issue's siblings and runs the position policy. A
// failed sibling read degrades to the sentinel position rather than failing
// the write; the condition is logged and the article ends up at the back of
// the issue.
func (s *articleService) positionFor(keywords []string, month, year int, excludeID string) int {
	articles, err := s.articleRepo.ListSiblings(month, year)
	if err != nil {
		s.log.Warn().Err(err).
			Int("month", month).
			Int("year", year).
			Msg("sibling query failed, using sentinel position")
		return PositionSentinel
	}
	return ComputePosition(keywords, siblingsOf(articles, excludeID))
}

// ApplyOrder applies a drag-and-drop result as independent position updates,
// issued sequentially. A failed update does not stop the batch and applied
// updates stay applied; the return value reports whether every update
// succeeded.
func (s *articleService) ApplyOrder(assignments []models.PositionAssignment) bool {
	ok := true
	for _, a := range assignments {
		if err := s.articleRepo.UpdatePosition(a.ID, a.Position); err != nil {
			s.log.Warn().Err(err).Str("article_id", a.ID).Msg("position update failed")
			ok = false
		}
	}
	return ok
}
