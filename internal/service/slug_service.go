package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken   = errors.New("slug is already in use")
	ErrSlugMissing = errors.New("slug is required")
)

var (
	slugInvalidPattern   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparatorPattern = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts a display name into a URL-safe slug: lowercase,
// alphanumerics and single hyphens only, no leading or trailing hyphen.
// Applying it to its own output yields the same value.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalidPattern.ReplaceAllString(s, "")
	s = slugSeparatorPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugService guards slug uniqueness per entity type. The unique index on the
// slug column remains the final arbiter under concurrent writes; this check
// exists to surface collisions as a field-level validation message.
type SlugService struct {
	db *gorm.DB
}

// NewSlugService creates a SlugService instance.
func NewSlugService(gdb *gorm.DB) *SlugService {
	return &SlugService{db: gdb}
}

// Reserve normalizes candidate and validates that it is free for the given
// entity type. current is the slug the record held before the edit; renaming
// a record to its own slug succeeds without touching the database. Collisions
// are a hard validation failure, never resolved by suffixing.
func (s *SlugService) Reserve(entity, candidate, current string) (string, error) {
	slug := Slugify(candidate)
	if slug == "" {
		return "", ErrSlugMissing
	}

	if current != "" && slug == current {
		return slug, nil
	}

	var count int64
	query := s.db.Model(modelForSlugEntity(entity)).Where("slug = ?", slug)
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugTaken
	}

	return slug, nil
}

func modelForSlugEntity(entity string) interface{} {
	switch entity {
	case "page":
		return &db.Page{}
	default:
		return &db.Program{}
	}
}
