package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrProgramNameMissing = errors.New("program name is required")
	ErrProgramTypeInvalid = errors.New("program type is invalid")
	ErrSubContentNotFound = errors.New("program subcontent not found")
	ErrSubContentMissing  = errors.New("subcontent content is required")
)

// relatedProgramLimit caps the "related programs" strip on detail pages.
const relatedProgramLimit = 3

// ProgramService handles the program catalog, its subcontent blocks and the
// featured/related selections the public pages build on.
type ProgramService struct {
	db    *gorm.DB
	slugs *SlugService
}

// NewProgramService creates a ProgramService instance.
func NewProgramService(gdb *gorm.DB) *ProgramService {
	return &ProgramService{db: gdb, slugs: NewSlugService(gdb)}
}

// ProgramInput represents fields accepted when creating or updating a program.
type ProgramInput struct {
	Name          string
	Slug          string
	Excerpt       string
	Description   string
	Type          string
	Category      string
	Icon          string
	ImageFilename string
	CTAURL        string
	CTAText       string
	IsFeatured    bool
	SortOrder     int
}

// SubContentInput represents fields accepted for a program subcontent block.
type SubContentInput struct {
	Title     string
	Content   string
	SortOrder int
}

// List returns all programs in display order.
func (s *ProgramService) List() ([]db.Program, error) {
	var programs []db.Program
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Get fetches a program by id.
func (s *ProgramService) Get(id uint) (*db.Program, error) {
	var program db.Program
	if err := s.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

// GetBySlug fetches a program by slug.
func (s *ProgramService) GetBySlug(slug string) (*db.Program, error) {
	var program db.Program
	if err := s.db.Where("slug = ?", slug).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

// Featured returns programs flagged for the homepage highlight strip,
// ordered by their display order. An empty result is valid.
func (s *ProgramService) Featured() ([]db.Program, error) {
	var programs []db.Program
	if err := s.db.Where("is_featured = ?", true).
		Order("sort_order asc").Order("id asc").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Related returns up to 3 other programs of the same type, primary key
// ascending. Zero matches is not an error.
func (s *ProgramService) Related(program *db.Program) ([]db.Program, error) {
	var related []db.Program
	if err := s.db.Where("type = ? AND id <> ?", program.Type, program.ID).
		Order("id asc").
		Limit(relatedProgramLimit).
		Find(&related).Error; err != nil {
		return nil, err
	}
	return related, nil
}

// Create inserts a new program. A blank slug is derived from the name; a
// slug held by another program fails with ErrSlugTaken.
func (s *ProgramService) Create(input ProgramInput) (*db.Program, error) {
	if err := validateProgramInput(input); err != nil {
		return nil, err
	}

	candidate := strings.TrimSpace(input.Slug)
	if candidate == "" {
		candidate = Slugify(input.Name)
	}
	slug, err := s.slugs.Reserve("program", candidate, "")
	if err != nil {
		return nil, err
	}

	program := db.Program{
		Name:          strings.TrimSpace(input.Name),
		Slug:          slug,
		Excerpt:       strings.TrimSpace(input.Excerpt),
		Description:   input.Description,
		Type:          input.Type,
		Category:      input.Category,
		Icon:          strings.TrimSpace(input.Icon),
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		CTAURL:        strings.TrimSpace(input.CTAURL),
		CTAText:       defaultCTAText(input.CTAText),
		IsFeatured:    input.IsFeatured,
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// Update modifies an existing program, re-reserving the slug only when it
// actually changes.
func (s *ProgramService) Update(id uint, input ProgramInput) (*db.Program, error) {
	if err := validateProgramInput(input); err != nil {
		return nil, err
	}

	program, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	candidate := strings.TrimSpace(input.Slug)
	if candidate == "" {
		candidate = Slugify(input.Name)
	}
	slug, err := s.slugs.Reserve("program", candidate, program.Slug)
	if err != nil {
		return nil, err
	}

	program.Name = strings.TrimSpace(input.Name)
	program.Slug = slug
	program.Excerpt = strings.TrimSpace(input.Excerpt)
	program.Description = input.Description
	program.Type = input.Type
	program.Category = input.Category
	program.Icon = strings.TrimSpace(input.Icon)
	program.CTAURL = strings.TrimSpace(input.CTAURL)
	program.CTAText = defaultCTAText(input.CTAText)
	program.IsFeatured = input.IsFeatured
	program.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		program.ImageFilename = filename
	}

	if err := s.db.Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

// Delete removes a program together with its subcontent blocks and its
// gallery items in one transaction. Gallery items die with their program on
// owner deletion; an explicit unlink merely nulls the reference instead
// (see GalleryService).
func (s *ProgramService) Delete(id uint) error {
	program, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&db.ProgramSubContent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).
			Delete(&db.GalleryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(program).Error
	})
}

// SubContentsOf returns a program's subcontent blocks in display order.
func (s *ProgramService) SubContentsOf(programID uint) ([]db.ProgramSubContent, error) {
	var subcontents []db.ProgramSubContent
	if err := s.db.Where("program_id = ?", programID).
		Order("sort_order asc").Order("id asc").
		Find(&subcontents).Error; err != nil {
		return nil, err
	}
	return subcontents, nil
}

// GetSubContent fetches a subcontent block by id.
func (s *ProgramService) GetSubContent(id uint) (*db.ProgramSubContent, error) {
	var subcontent db.ProgramSubContent
	if err := s.db.First(&subcontent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubContentNotFound
		}
		return nil, err
	}
	return &subcontent, nil
}

// CreateSubContent adds a subcontent block to a program.
func (s *ProgramService) CreateSubContent(programID uint, input SubContentInput) (*db.ProgramSubContent, error) {
	program, err := s.Get(programID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrSubContentMissing
	}

	subcontent := db.ProgramSubContent{
		ProgramID: &program.ID,
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		SortOrder: input.SortOrder,
	}
	if err := s.db.Create(&subcontent).Error; err != nil {
		return nil, err
	}
	return &subcontent, nil
}

// UpdateSubContent modifies an existing subcontent block.
func (s *ProgramService) UpdateSubContent(id uint, input SubContentInput) (*db.ProgramSubContent, error) {
	subcontent, err := s.GetSubContent(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrSubContentMissing
	}

	subcontent.Title = strings.TrimSpace(input.Title)
	subcontent.Content = input.Content
	subcontent.SortOrder = input.SortOrder

	if err := s.db.Save(subcontent).Error; err != nil {
		return nil, err
	}
	return subcontent, nil
}

// DeleteSubContent removes a subcontent block.
func (s *ProgramService) DeleteSubContent(id uint) error {
	subcontent, err := s.GetSubContent(id)
	if err != nil {
		return err
	}
	return s.db.Delete(subcontent).Error
}

func validateProgramInput(input ProgramInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProgramNameMissing
	}
	for _, t := range db.ProgramTypes {
		if input.Type == t {
			return nil
		}
	}
	return ErrProgramTypeInvalid
}

func defaultCTAText(text string) string {
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		return trimmed
	}
	return "Learn More"
}
