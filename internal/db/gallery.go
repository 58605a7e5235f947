package db

import "gorm.io/gorm"

// GalleryItem 定义作品集条目，可为图片或外部视频，program_id 可选关联项目。
type GalleryItem struct {
	gorm.Model
	Title         string
	ImageFilename string
	VideoURL      string
	Category      string `gorm:"size:64;default:General"`
	ProgramID     *uint  `gorm:"index"`
	SortOrder     int    `gorm:"default:0"`
	ImageWidth    int
	ImageHeight   int
}
