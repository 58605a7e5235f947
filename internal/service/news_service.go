package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound     = errors.New("news article not found")
	ErrNewsTitleMissing = errors.New("news title is required")
)

// NewsService handles news articles and the sidebar aggregates of the
// news pages.
type NewsService struct {
	db *gorm.DB
}

// NewNewsService creates a NewsService instance.
func NewNewsService(gdb *gorm.DB) *NewsService {
	return &NewsService{db: gdb}
}

// NewsInput represents fields accepted when creating or updating an article.
type NewsInput struct {
	Title            string
	Content          string
	Category         string
	DatePublished    time.Time
	FeaturedImageURL string
	ImageFilename    string
	Excerpt          string
	SortOrder        int
}

// CategoryCount pairs a category name with its article count.
type CategoryCount struct {
	Name  string
	Count int64
}

// List returns all articles, newest first.
func (s *NewsService) List() ([]db.NewsArticle, error) {
	var articles []db.NewsArticle
	if err := s.db.Order("date_published desc").Order("id desc").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Get fetches an article by id.
func (s *NewsService) Get(id uint) (*db.NewsArticle, error) {
	var article db.NewsArticle
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Recent returns the newest articles excluding one id, for the related
// sidebar on the detail page.
func (s *NewsService) Recent(excludeID uint, limit int) ([]db.NewsArticle, error) {
	var articles []db.NewsArticle
	if err := s.db.Where("id <> ?", excludeID).
		Order("date_published desc").Order("id desc").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Categories returns distinct non-empty categories with article counts.
func (s *NewsService) Categories() ([]CategoryCount, error) {
	var counts []CategoryCount
	if err := s.db.Model(&db.NewsArticle{}).
		Select("category as name, COUNT(id) as count").
		Where("category <> ''").
		Group("category").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// Create inserts a new article. A zero publish date defaults to now.
func (s *NewsService) Create(input NewsInput) (*db.NewsArticle, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNewsTitleMissing
	}

	published := input.DatePublished
	if published.IsZero() {
		published = time.Now()
	}

	article := db.NewsArticle{
		Title:            title,
		Content:          input.Content,
		Category:         strings.TrimSpace(input.Category),
		DatePublished:    published,
		FeaturedImageURL: strings.TrimSpace(input.FeaturedImageURL),
		ImageFilename:    strings.TrimSpace(input.ImageFilename),
		Excerpt:          input.Excerpt,
		SortOrder:        input.SortOrder,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update modifies an existing article.
func (s *NewsService) Update(id uint, input NewsInput) (*db.NewsArticle, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNewsTitleMissing
	}

	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	article.Title = title
	article.Content = input.Content
	article.Category = strings.TrimSpace(input.Category)
	if !input.DatePublished.IsZero() {
		article.DatePublished = input.DatePublished
	}
	article.FeaturedImageURL = strings.TrimSpace(input.FeaturedImageURL)
	article.Excerpt = input.Excerpt
	article.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		article.ImageFilename = filename
	}

	if err := s.db.Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Delete removes an article.
func (s *NewsService) Delete(id uint) error {
	article, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(article).Error
}
