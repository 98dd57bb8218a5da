package services

import (
	"context"
	"fmt"
	"sync"

	"magazine-cms/models"

	"gorm.io/gorm"
)

// Hand-written repository fakes, enough for the service contracts under test.

type fakeArticleRepo struct {
	mu          sync.Mutex
	articles    map[string]*models.Article
	siblings    []models.Article
	siblingsErr error
	updates     []models.PositionAssignment
	failIDs     map[string]bool
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{
		articles: make(map[string]*models.Article),
		failIDs:  make(map[string]bool),
	}
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if article.ID == "" {
		article.ID = "generated"
	}
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	article, ok := f.articles[id]
	if !ok || article.Deleted {
		return nil, gorm.ErrRecordNotFound
	}
	return article, nil
}

func (f *fakeArticleRepo) ListByIssue(ctx context.Context, month, year *int) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.siblingsErr != nil {
		return nil, f.siblingsErr
	}
	return f.siblings, nil
}

func (f *fakeArticleRepo) ListSiblings(month, year int) ([]models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.siblingsErr != nil {
		return nil, f.siblingsErr
	}
	return f.siblings, nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) UpdatePosition(id string, position int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[id] {
		return gorm.ErrRecordNotFound
	}
	f.updates = append(f.updates, models.PositionAssignment{ID: id, Position: position})
	return nil
}

func (f *fakeArticleRepo) SoftDelete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	article, ok := f.articles[id]
	if !ok || article.Deleted {
		return gorm.ErrRecordNotFound
	}
	article.Deleted = true
	return nil
}

type fakeSettingRepo struct {
	values map[string]string
}

func (f *fakeSettingRepo) Get(key string) (*models.Setting, error) {
	value, ok := f.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Setting{Key: key, Value: value}, nil
}

func (f *fakeSettingRepo) Set(key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

type fakePreferenceRepo struct {
	prefs   map[uint]*models.UserPreference
	deleted []uint
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[uint]*models.UserPreference)}
}

func (f *fakePreferenceRepo) GetByUserID(userID uint) (*models.UserPreference, error) {
	pref, ok := f.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pref, nil
}

func (f *fakePreferenceRepo) Save(pref *models.UserPreference) error {
	f.prefs[pref.UserID] = pref
	return nil
}

func (f *fakePreferenceRepo) DeleteByUserID(userID uint) error {
	delete(f.prefs, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
	views    map[string]bool // "userID/commentID"
	viewErrs map[string]error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: make(map[string]*models.Comment),
		views:    make(map[string]bool),
		viewErrs: make(map[string]error),
	}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if comment.ID == "" {
		comment.ID = "generated"
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(id string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[id]
	if !ok || comment.Deleted {
		return nil, gorm.ErrRecordNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) ListByArticle(articleID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var comments []models.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID && !c.Deleted {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) SoftDelete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	comment, ok := f.comments[id]
	if !ok || comment.Deleted {
		return gorm.ErrRecordNotFound
	}
	comment.Deleted = true
	return nil
}

func (f *fakeCommentRepo) ListViewedCommentIDs(userID uint, articleID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, c := range f.comments {
		if c.ArticleID == articleID && f.views[viewKey(userID, c.ID)] {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (f *fakeCommentRepo) UpsertView(userID uint, commentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.viewErrs[commentID]; err != nil {
		return err
	}
	f.views[viewKey(userID, commentID)] = true
	return nil
}

func viewKey(userID uint, commentID string) string {
	return fmt.Sprintf("%d/%s", userID, commentID)
}
