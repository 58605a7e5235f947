package db

import "gorm.io/gorm"

// TeamMember 表示团队成员。PhotoURL 为历史外链字段，优先使用本地上传的 ImageFilename。
type TeamMember struct {
	gorm.Model
	Name          string `gorm:"size:128;not null"`
	Title         string `gorm:"size:128"`
	Bio           string `gorm:"type:text"`
	PhotoURL      string
	ImageFilename string
	SortOrder     int `gorm:"default:0"`
}

// Testimonial 表示用户评价。
type Testimonial struct {
	gorm.Model
	AuthorName     string `gorm:"size:128"`
	AuthorRole     string `gorm:"size:128"`
	AuthorPhotoURL string
	ImageFilename  string
	Content        string `gorm:"type:text"`
	SortOrder      int    `gorm:"default:0"`
}

// ImpactMetric 表示影响力数据（如 "50+ 国家"），icon 为 FontAwesome class。
type ImpactMetric struct {
	gorm.Model
	Label     string `gorm:"size:128"`
	Value     string `gorm:"size:64"`
	Icon      string `gorm:"size:64"`
	SortOrder int    `gorm:"default:0"`
}
