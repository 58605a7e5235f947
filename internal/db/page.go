package db

import "gorm.io/gorm"

// Page 表示站点的一个独立页面（home、about 等），通过 slug 唯一定位。
type Page struct {
	gorm.Model
	Slug            string `gorm:"uniqueIndex;not null"`
	HeroTitle       string
	HeroSubtitle    string
	HeroDescription string `gorm:"type:text"`
	MetaDescription string `gorm:"type:text"`
	IsComingSoon    bool   `gorm:"default:false"`
}

// Section 表示页面内的一个内容区块，section_key 标识其语义位置（如 intro、vision）。
// 同一页面内的区块按 sort_order 升序渲染。
type Section struct {
	gorm.Model
	PageID        uint   `gorm:"not null;index"`
	SectionKey    string `gorm:"size:64;not null"`
	Title         string
	Content       string `gorm:"type:text"`
	ImageFilename string
	VideoURL      string
	SortOrder     int `gorm:"default:0"`
}

// ContentItem 表示区块内列表的通用条目（卡片、轮播页等）。
type ContentItem struct {
	gorm.Model
	SectionID     uint `gorm:"not null;index"`
	Title         string
	Subtitle      string
	Content       string `gorm:"type:text"`
	ImageFilename string
	Icon          string `gorm:"size:64"`
	LinkURL       string
	LinkText      string `gorm:"size:64"`
	SortOrder     int    `gorm:"default:0"`
}
