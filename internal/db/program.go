package db

import "gorm.io/gorm"

// 项目类型的封闭集合。Category 为历史遗留的自由文本分类，仅作兼容保留。
const (
	ProgramTypeCompetitions = "competitions"
	ProgramTypeTraining     = "training"
	ProgramTypeRecognition  = "recognition"
	ProgramTypeAwards       = "awards"
	ProgramTypeTradeFairs   = "trade_fairs"
	ProgramTypeCustom       = "custom"
)

// ProgramTypes 列出全部合法的项目类型，供表单下拉与校验使用。
var ProgramTypes = []string{
	ProgramTypeCompetitions,
	ProgramTypeTraining,
	ProgramTypeRecognition,
	ProgramTypeAwards,
	ProgramTypeTradeFairs,
	ProgramTypeCustom,
}

// Program 表示一个对外项目（赛事、培训等），通过全局唯一 slug 定位详情页。
type Program struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;size:64;not null"`
	Excerpt       string `gorm:"size:250"`
	Description   string `gorm:"type:text"`
	Type          string `gorm:"size:64"`
	Category      string `gorm:"size:64"`
	Icon          string `gorm:"size:64"`
	ImageFilename string
	CTAURL        string
	CTAText       string `gorm:"size:64;default:Learn More"`
	IsFeatured    bool   `gorm:"default:false"`
	SortOrder     int    `gorm:"default:0"`
}

// DetailPath 返回项目详情页的站内路径。
func (p *Program) DetailPath() string {
	return "/programs/" + p.Slug
}

// ProgramSubContent 表示项目详情页的补充内容块，content 以换行分隔表示列表项。
type ProgramSubContent struct {
	gorm.Model
	ProgramID *uint `gorm:"index"`
	Title     string
	Content   string `gorm:"type:text"`
	SortOrder int    `gorm:"default:0"`
}
