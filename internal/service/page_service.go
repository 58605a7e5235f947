package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound        = errors.New("page not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrContentItemNotFound = errors.New("content item not found")
	ErrSectionKeyMissing   = errors.New("section key is required")
)

// PageService owns the page → section → item hierarchy that backs every
// public page of the site.
type PageService struct {
	db    *gorm.DB
	slugs *SlugService
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb, slugs: NewSlugService(gdb)}
}

// PageInput represents fields accepted when creating or updating a page.
type PageInput struct {
	Slug            string
	HeroTitle       string
	HeroSubtitle    string
	HeroDescription string
	MetaDescription string
	IsComingSoon    bool
}

// SectionInput represents fields accepted for a page section.
type SectionInput struct {
	SectionKey    string
	Title         string
	Content       string
	ImageFilename string
	VideoURL      string
	SortOrder     int
}

// ContentItemInput represents fields accepted for an item within a section.
type ContentItemInput struct {
	Title         string
	Subtitle      string
	Content       string
	ImageFilename string
	Icon          string
	LinkURL       string
	LinkText      string
	SortOrder     int
}

// List returns all pages ordered by slug.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("slug asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Get fetches a page by id.
func (s *PageService) Get(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Create inserts a new page after reserving its slug.
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	candidate := strings.TrimSpace(input.Slug)
	if candidate == "" {
		candidate = Slugify(input.HeroTitle)
	}
	slug, err := s.slugs.Reserve("page", candidate, "")
	if err != nil {
		return nil, err
	}

	page := db.Page{
		Slug:            slug,
		HeroTitle:       strings.TrimSpace(input.HeroTitle),
		HeroSubtitle:    strings.TrimSpace(input.HeroSubtitle),
		HeroDescription: input.HeroDescription,
		MetaDescription: input.MetaDescription,
		IsComingSoon:    input.IsComingSoon,
	}
	if err := s.db.Create(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// Update modifies an existing page. Renaming the page to its own slug is
// always allowed; renaming onto another page fails with ErrSlugTaken.
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	page, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	candidate := strings.TrimSpace(input.Slug)
	if candidate == "" {
		candidate = page.Slug
	}
	slug, err := s.slugs.Reserve("page", candidate, page.Slug)
	if err != nil {
		return nil, err
	}

	page.Slug = slug
	page.HeroTitle = strings.TrimSpace(input.HeroTitle)
	page.HeroSubtitle = strings.TrimSpace(input.HeroSubtitle)
	page.HeroDescription = input.HeroDescription
	page.MetaDescription = input.MetaDescription
	page.IsComingSoon = input.IsComingSoon

	if err := s.db.Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page together with its sections and their items in a
// single transaction.
func (s *PageService) Delete(id uint) error {
	page, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&db.Section{}).Where("page_id = ?", page.ID).
			Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).
				Delete(&db.ContentItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("page_id = ?", page.ID).
				Delete(&db.Section{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(page).Error
	})
}

// SectionsOf returns a page's sections in display order. Ties on sort_order
// fall back to insertion order so rendering stays deterministic.
func (s *PageService) SectionsOf(pageID uint) ([]db.Section, error) {
	var sections []db.Section
	if err := s.db.Where("page_id = ?", pageID).
		Order("sort_order asc").Order("id asc").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// SectionMap returns a page's sections keyed by section_key, the shape the
// public templates consume. A later section wins on duplicate keys.
func (s *PageService) SectionMap(pageID uint) (map[string]db.Section, error) {
	sections, err := s.SectionsOf(pageID)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]db.Section, len(sections))
	for _, section := range sections {
		byKey[section.SectionKey] = section
	}
	return byKey, nil
}

// GetSection fetches a section by id.
func (s *PageService) GetSection(id uint) (*db.Section, error) {
	var section db.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

// CreateSection adds a section to a page.
func (s *PageService) CreateSection(pageID uint, input SectionInput) (*db.Section, error) {
	if _, err := s.Get(pageID); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(input.SectionKey)
	if key == "" {
		return nil, ErrSectionKeyMissing
	}

	section := db.Section{
		PageID:        pageID,
		SectionKey:    key,
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		VideoURL:      strings.TrimSpace(input.VideoURL),
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// UpdateSection modifies an existing section. An empty ImageFilename keeps
// the current upload.
func (s *PageService) UpdateSection(id uint, input SectionInput) (*db.Section, error) {
	section, err := s.GetSection(id)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSpace(input.SectionKey)
	if key == "" {
		return nil, ErrSectionKeyMissing
	}

	section.SectionKey = key
	section.Title = strings.TrimSpace(input.Title)
	section.Content = input.Content
	section.VideoURL = strings.TrimSpace(input.VideoURL)
	section.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		section.ImageFilename = filename
	}

	if err := s.db.Save(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// DeleteSection removes a section and every item it owns atomically.
func (s *PageService) DeleteSection(id uint) error {
	section, err := s.GetSection(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", section.ID).
			Delete(&db.ContentItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(section).Error
	})
}

// ItemsOf returns a section's items in display order.
func (s *PageService) ItemsOf(sectionID uint) ([]db.ContentItem, error) {
	var items []db.ContentItem
	if err := s.db.Where("section_id = ?", sectionID).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a content item by id.
func (s *PageService) GetItem(id uint) (*db.ContentItem, error) {
	var item db.ContentItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem adds an item to a section.
func (s *PageService) CreateItem(sectionID uint, input ContentItemInput) (*db.ContentItem, error) {
	if _, err := s.GetSection(sectionID); err != nil {
		return nil, err
	}

	item := db.ContentItem{
		SectionID:     sectionID,
		Title:         strings.TrimSpace(input.Title),
		Subtitle:      strings.TrimSpace(input.Subtitle),
		Content:       input.Content,
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		Icon:          strings.TrimSpace(input.Icon),
		LinkURL:       strings.TrimSpace(input.LinkURL),
		LinkText:      strings.TrimSpace(input.LinkText),
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem modifies an existing content item.
func (s *PageService) UpdateItem(id uint, input ContentItemInput) (*db.ContentItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Subtitle = strings.TrimSpace(input.Subtitle)
	item.Content = input.Content
	item.Icon = strings.TrimSpace(input.Icon)
	item.LinkURL = strings.TrimSpace(input.LinkURL)
	item.LinkText = strings.TrimSpace(input.LinkText)
	item.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		item.ImageFilename = filename
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a content item.
func (s *PageService) DeleteItem(id uint) error {
	item, err := s.GetItem(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}
