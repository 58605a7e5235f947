package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactInfoNotFound = errors.New("contact info not found")
	ErrSocialNotFound      = errors.New("social media link not found")
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrSponsorNameMissing  = errors.New("sponsor name is required")
)

// SiteService 提供站点设置、联系信息、社交链接与赞助商的读写能力。
type SiteService struct {
	db *gorm.DB
}

// NewSiteService 构造 SiteService。
func NewSiteService(gdb *gorm.DB) *SiteService {
	return &SiteService{db: gdb}
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	SiteName          string
	FooterDescription string
	CopyrightText     string
}

// ContactInfoInput 用于创建或更新联系信息。
type ContactInfoInput struct {
	InfoType           string
	LocationDepartment string
	Email              string
	Phone              string
	Address            string
	Hours              string
}

// SocialMediaInput 用于创建或更新社交链接。
type SocialMediaInput struct {
	Platform string
	URL      string
}

// SponsorInput 用于创建或更新赞助商。
type SponsorInput struct {
	Name         string
	LogoFilename string
	SortOrder    int
}

// Settings 读取站点设置，不存在时创建带默认值的单行记录。
func (s *SiteService) Settings() (*db.SiteSettings, error) {
	var settings db.SiteSettings
	err := s.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = db.SiteSettings{
		SiteName:      "EIDIKOS",
		CopyrightText: "&copy; 2025 Eidikos Global Events LLC. All Rights Reserved.",
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings 更新站点设置。
func (s *SiteService) UpdateSettings(input SiteSettingsInput) (*db.SiteSettings, error) {
	settings, err := s.Settings()
	if err != nil {
		return nil, err
	}

	settings.SiteName = strings.TrimSpace(input.SiteName)
	settings.FooterDescription = input.FooterDescription
	settings.CopyrightText = strings.TrimSpace(input.CopyrightText)
	if settings.SiteName == "" {
		settings.SiteName = "EIDIKOS"
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// PrimaryContact 返回第一条联系信息，供页脚等全局位置展示；没有记录时返回 nil。
func (s *SiteService) PrimaryContact() (*db.ContactInfo, error) {
	var info db.ContactInfo
	if err := s.db.Order("id asc").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// ListContacts 返回全部联系信息。
func (s *SiteService) ListContacts() ([]db.ContactInfo, error) {
	var infos []db.ContactInfo
	if err := s.db.Order("id asc").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

// GetContact 按 id 获取联系信息。
func (s *SiteService) GetContact(id uint) (*db.ContactInfo, error) {
	var info db.ContactInfo
	if err := s.db.First(&info, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactInfoNotFound
		}
		return nil, err
	}
	return &info, nil
}

// CreateContact 新增联系信息。
func (s *SiteService) CreateContact(input ContactInfoInput) (*db.ContactInfo, error) {
	info := db.ContactInfo{
		InfoType:           strings.TrimSpace(input.InfoType),
		LocationDepartment: strings.TrimSpace(input.LocationDepartment),
		Email:              strings.TrimSpace(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		Address:            input.Address,
		Hours:              strings.TrimSpace(input.Hours),
	}
	if err := s.db.Create(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateContact 更新联系信息。
func (s *SiteService) UpdateContact(id uint, input ContactInfoInput) (*db.ContactInfo, error) {
	info, err := s.GetContact(id)
	if err != nil {
		return nil, err
	}

	info.InfoType = strings.TrimSpace(input.InfoType)
	info.LocationDepartment = strings.TrimSpace(input.LocationDepartment)
	info.Email = strings.TrimSpace(input.Email)
	info.Phone = strings.TrimSpace(input.Phone)
	info.Address = input.Address
	info.Hours = strings.TrimSpace(input.Hours)

	if err := s.db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

// DeleteContact 删除联系信息。
func (s *SiteService) DeleteContact(id uint) error {
	info, err := s.GetContact(id)
	if err != nil {
		return err
	}
	return s.db.Delete(info).Error
}

// ListSocial 返回全部社交链接。
func (s *SiteService) ListSocial() ([]db.SocialMedia, error) {
	var links []db.SocialMedia
	if err := s.db.Order("id asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetSocial 按 id 获取社交链接。
func (s *SiteService) GetSocial(id uint) (*db.SocialMedia, error) {
	var link db.SocialMedia
	if err := s.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialNotFound
		}
		return nil, err
	}
	return &link, nil
}

// CreateSocial 新增社交链接。
func (s *SiteService) CreateSocial(input SocialMediaInput) (*db.SocialMedia, error) {
	link := db.SocialMedia{
		Platform: strings.TrimSpace(input.Platform),
		URL:      strings.TrimSpace(input.URL),
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateSocial 更新社交链接。
func (s *SiteService) UpdateSocial(id uint, input SocialMediaInput) (*db.SocialMedia, error) {
	link, err := s.GetSocial(id)
	if err != nil {
		return nil, err
	}

	link.Platform = strings.TrimSpace(input.Platform)
	link.URL = strings.TrimSpace(input.URL)

	if err := s.db.Save(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteSocial 删除社交链接。
func (s *SiteService) DeleteSocial(id uint) error {
	link, err := s.GetSocial(id)
	if err != nil {
		return err
	}
	return s.db.Delete(link).Error
}

// ListSponsors 按展示顺序返回赞助商。
func (s *SiteService) ListSponsors() ([]db.Sponsor, error) {
	var sponsors []db.Sponsor
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&sponsors).Error; err != nil {
		return nil, err
	}
	return sponsors, nil
}

// GetSponsor 按 id 获取赞助商。
func (s *SiteService) GetSponsor(id uint) (*db.Sponsor, error) {
	var sponsor db.Sponsor
	if err := s.db.First(&sponsor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return &sponsor, nil
}

// CreateSponsor 新增赞助商。
func (s *SiteService) CreateSponsor(input SponsorInput) (*db.Sponsor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSponsorNameMissing
	}

	sponsor := db.Sponsor{
		Name:         name,
		LogoFilename: strings.TrimSpace(input.LogoFilename),
		SortOrder:    input.SortOrder,
	}
	if err := s.db.Create(&sponsor).Error; err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// UpdateSponsor 更新赞助商。
func (s *SiteService) UpdateSponsor(id uint, input SponsorInput) (*db.Sponsor, error) {
	sponsor, err := s.GetSponsor(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSponsorNameMissing
	}

	sponsor.Name = name
	sponsor.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.LogoFilename); filename != "" {
		sponsor.LogoFilename = filename
	}

	if err := s.db.Save(sponsor).Error; err != nil {
		return nil, err
	}
	return sponsor, nil
}

// DeleteSponsor 删除赞助商。
func (s *SiteService) DeleteSponsor(id uint) error {
	sponsor, err := s.GetSponsor(id)
	if err != nil {
		return err
	}
	return s.db.Delete(sponsor).Error
}
