package db

import (
	"time"

	"gorm.io/gorm"
)

// NewsArticle 表示新闻/动态文章，正文为 Markdown。
type NewsArticle struct {
	gorm.Model
	Title            string `gorm:"not null"`
	Content          string `gorm:"type:text"`
	Category         string `gorm:"size:64"`
	DatePublished    time.Time
	FeaturedImageURL string
	ImageFilename    string
	Excerpt          string `gorm:"type:text"`
	SortOrder        int    `gorm:"default:0"`
}
