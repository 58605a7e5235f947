package db

import (
	"strings"

	"gorm.io/gorm"
)

// Partnership 表示一类合作关系（学校、企业等）。Benefits 按行存储权益列表。
type Partnership struct {
	gorm.Model
	Type          string `gorm:"size:64"`
	Title         string
	Description   string `gorm:"type:text"`
	Benefits      string `gorm:"type:text"`
	LogoURL       string
	ImageFilename string
	SortOrder     int `gorm:"default:0"`
}

// BenefitsList 将换行分隔的权益文本拆分为列表，去除空白行。
func (p *Partnership) BenefitsList() []string {
	if strings.TrimSpace(p.Benefits) == "" {
		return nil
	}

	normalized := strings.ReplaceAll(p.Benefits, "\r\n", "\n")
	var benefits []string
	for _, line := range strings.Split(normalized, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			benefits = append(benefits, trimmed)
		}
	}
	return benefits
}

// SponsorshipTier 表示某个合作关系下的赞助等级。
type SponsorshipTier struct {
	gorm.Model
	PartnershipID uint   `gorm:"not null;index"`
	TierName      string `gorm:"size:128"`
	Benefits      string `gorm:"type:text"`
	SortOrder     int    `gorm:"default:0"`
}
