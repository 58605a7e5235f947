package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPartnershipNotFound = errors.New("partnership not found")
	ErrTierNotFound        = errors.New("sponsorship tier not found")
	ErrTierNameMissing     = errors.New("tier name is required")
)

// PartnershipService handles partnerships and their sponsorship tiers.
type PartnershipService struct {
	db *gorm.DB
}

// NewPartnershipService creates a PartnershipService instance.
func NewPartnershipService(gdb *gorm.DB) *PartnershipService {
	return &PartnershipService{db: gdb}
}

// PartnershipInput represents fields accepted for a partnership.
type PartnershipInput struct {
	Type          string
	Title         string
	Description   string
	Benefits      string
	LogoURL       string
	ImageFilename string
	SortOrder     int
}

// TierInput represents fields accepted for a sponsorship tier.
type TierInput struct {
	TierName  string
	Benefits  string
	SortOrder int
}

// List returns all partnerships in display order.
func (s *PartnershipService) List() ([]db.Partnership, error) {
	var partnerships []db.Partnership
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&partnerships).Error; err != nil {
		return nil, err
	}
	return partnerships, nil
}

// Get fetches a partnership by id.
func (s *PartnershipService) Get(id uint) (*db.Partnership, error) {
	var partnership db.Partnership
	if err := s.db.First(&partnership, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, err
	}
	return &partnership, nil
}

// Create inserts a new partnership.
func (s *PartnershipService) Create(input PartnershipInput) (*db.Partnership, error) {
	partnership := db.Partnership{
		Type:          input.Type,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		Benefits:      input.Benefits,
		LogoURL:       strings.TrimSpace(input.LogoURL),
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&partnership).Error; err != nil {
		return nil, err
	}
	return &partnership, nil
}

// Update modifies an existing partnership.
func (s *PartnershipService) Update(id uint, input PartnershipInput) (*db.Partnership, error) {
	partnership, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	partnership.Type = input.Type
	partnership.Title = strings.TrimSpace(input.Title)
	partnership.Description = input.Description
	partnership.Benefits = input.Benefits
	partnership.LogoURL = strings.TrimSpace(input.LogoURL)
	partnership.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		partnership.ImageFilename = filename
	}

	if err := s.db.Save(partnership).Error; err != nil {
		return nil, err
	}
	return partnership, nil
}

// Delete removes a partnership. Tiers are intentionally left in place: the
// partnership/tier relation does not cascade, unlike the page and program
// hierarchies.
func (s *PartnershipService) Delete(id uint) error {
	partnership, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(partnership).Error
}

// TiersOf returns a partnership's sponsorship tiers in display order.
func (s *PartnershipService) TiersOf(partnershipID uint) ([]db.SponsorshipTier, error) {
	var tiers []db.SponsorshipTier
	if err := s.db.Where("partnership_id = ?", partnershipID).
		Order("sort_order asc").Order("id asc").
		Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

// GetTier fetches a sponsorship tier by id.
func (s *PartnershipService) GetTier(id uint) (*db.SponsorshipTier, error) {
	var tier db.SponsorshipTier
	if err := s.db.First(&tier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}
	return &tier, nil
}

// CreateTier adds a sponsorship tier to a partnership.
func (s *PartnershipService) CreateTier(partnershipID uint, input TierInput) (*db.SponsorshipTier, error) {
	partnership, err := s.Get(partnershipID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.TierName) == "" {
		return nil, ErrTierNameMissing
	}

	tier := db.SponsorshipTier{
		PartnershipID: partnership.ID,
		TierName:      strings.TrimSpace(input.TierName),
		Benefits:      input.Benefits,
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&tier).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

// UpdateTier modifies an existing sponsorship tier.
func (s *PartnershipService) UpdateTier(id uint, input TierInput) (*db.SponsorshipTier, error) {
	tier, err := s.GetTier(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.TierName) == "" {
		return nil, ErrTierNameMissing
	}

	tier.TierName = strings.TrimSpace(input.TierName)
	tier.Benefits = input.Benefits
	tier.SortOrder = input.SortOrder

	if err := s.db.Save(tier).Error; err != nil {
		return nil, err
	}
	return tier, nil
}

// DeleteTier removes a sponsorship tier.
func (s *PartnershipService) DeleteTier(id uint) error {
	tier, err := s.GetTier(id)
	if err != nil {
		return err
	}
	return s.db.Delete(tier).Error
}
