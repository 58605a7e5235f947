package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrGalleryMediaMissing = errors.New("gallery item needs an image or video")
)

// GalleryService handles gallery item CRUD and the optional program link.
type GalleryService struct {
	db *gorm.DB
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// GalleryInput represents fields accepted when creating or updating a
// gallery item. ProgramID 0 means "no program".
type GalleryInput struct {
	Title         string
	ImageFilename string
	VideoURL      string
	Category      string
	ProgramID     uint
	SortOrder     int
	ImageWidth    int
	ImageHeight   int
}

// List returns all gallery items in public display order.
func (s *GalleryService) List() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAdmin returns gallery items with newest uploads first within the same
// display order, the ordering the admin list uses.
func (s *GalleryService) ListAdmin() ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("sort_order asc").Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByProgram returns the gallery items linked to a program in display order.
func (s *GalleryService) ListByProgram(programID uint) ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Where("program_id = ?", programID).
		Order("sort_order asc").Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Recent returns the newest gallery items up to limit, for teaser strips.
func (s *GalleryService) Recent(limit int) ([]db.GalleryItem, error) {
	var items []db.GalleryItem
	if err := s.db.Order("sort_order asc").Order("id asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ProgramsWithItems returns the distinct programs that have at least one
// gallery item, used for the public gallery filter.
func (s *GalleryService) ProgramsWithItems() ([]db.Program, error) {
	var programs []db.Program
	if err := s.db.Model(&db.Program{}).
		Joins("JOIN gallery_items ON gallery_items.program_id = programs.id AND gallery_items.deleted_at IS NULL").
		Distinct().
		Order("programs.sort_order asc").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Get fetches a gallery item by id.
func (s *GalleryService) Get(id uint) (*db.GalleryItem, error) {
	var item db.GalleryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery item.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryItem, error) {
	item := db.GalleryItem{
		Title:         strings.TrimSpace(input.Title),
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		VideoURL:      strings.TrimSpace(input.VideoURL),
		Category:      normalizeGalleryCategory(input.Category),
		ProgramID:     programRef(input.ProgramID),
		SortOrder:     input.SortOrder,
		ImageWidth:    input.ImageWidth,
		ImageHeight:   input.ImageHeight,
	}
	if item.ImageFilename == "" && item.VideoURL == "" {
		return nil, ErrGalleryMediaMissing
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing gallery item. Setting ProgramID to 0 unlinks
// the program: the reference is nulled, the item itself survives. An empty
// ImageFilename keeps the current upload.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.VideoURL = strings.TrimSpace(input.VideoURL)
	item.Category = normalizeGalleryCategory(input.Category)
	item.ProgramID = programRef(input.ProgramID)
	item.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		item.ImageFilename = filename
		item.ImageWidth = input.ImageWidth
		item.ImageHeight = input.ImageHeight
	}

	// ProgramID 会在置空时被 Save 跳过，这里用 Select 强制写入
	if err := s.db.Model(item).Select("*").Omit("created_at").Updates(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a gallery item.
func (s *GalleryService) Delete(id uint) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

func normalizeGalleryCategory(category string) string {
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		return trimmed
	}
	return "General"
}

func programRef(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
