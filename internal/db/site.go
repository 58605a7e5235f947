package db

import "gorm.io/gorm"

// SiteSettings 存储全站品牌与页脚配置，按单行记录使用。
type SiteSettings struct {
	gorm.Model
	SiteName          string `gorm:"size:128;default:EIDIKOS"`
	FooterDescription string `gorm:"type:text"`
	CopyrightText     string
}

// ContactInfo 表示一条联系信息（总部、分部等）。
type ContactInfo struct {
	gorm.Model
	InfoType           string `gorm:"size:64"`
	LocationDepartment string `gorm:"size:128"`
	Email              string `gorm:"size:128"`
	Phone              string `gorm:"size:64"`
	Address            string `gorm:"type:text"`
	Hours              string `gorm:"size:128"`
}

// SocialMedia 表示页脚展示的社交媒体链接。
type SocialMedia struct {
	gorm.Model
	Platform string `gorm:"size:64"`
	URL      string
}

// IconClass 返回平台对应的 FontAwesome class，未识别的平台回退为通用链接图标。
func (s *SocialMedia) IconClass() string {
	icons := map[string]string{
		"LinkedIn":  "fab fa-linkedin-in",
		"Facebook":  "fab fa-facebook-f",
		"Instagram": "fab fa-instagram",
		"YouTube":   "fab fa-youtube",
		"Twitter":   "fab fa-twitter",
		"X":         "fab fa-twitter",
	}
	if icon, ok := icons[s.Platform]; ok {
		return icon
	}
	return "fas fa-link"
}

// Sponsor 表示首页滚动条中的赞助商 Logo。
type Sponsor struct {
	gorm.Model
	Name         string `gorm:"size:128;not null"`
	LogoFilename string
	SortOrder    int `gorm:"default:0"`
}
