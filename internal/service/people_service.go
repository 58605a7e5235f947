package service

import (
	"errors"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound  = errors.New("team member not found")
	ErrTeamNameMissing     = errors.New("team member name is required")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrTestimonialMissing  = errors.New("testimonial content is required")
	ErrMetricNotFound      = errors.New("impact metric not found")
	ErrMetricLabelMissing  = errors.New("metric label and value are required")
)

// PeopleService handles team members, testimonials and impact metrics,
// the ordered independent-record lists of the about and news pages.
type PeopleService struct {
	db *gorm.DB
}

// NewPeopleService creates a PeopleService instance.
func NewPeopleService(gdb *gorm.DB) *PeopleService {
	return &PeopleService{db: gdb}
}

// TeamMemberInput represents fields accepted for a team member.
type TeamMemberInput struct {
	Name          string
	Title         string
	Bio           string
	PhotoURL      string
	ImageFilename string
	SortOrder     int
}

// TestimonialInput represents fields accepted for a testimonial.
type TestimonialInput struct {
	AuthorName     string
	AuthorRole     string
	AuthorPhotoURL string
	ImageFilename  string
	Content        string
	SortOrder      int
}

// MetricInput represents fields accepted for an impact metric.
type MetricInput struct {
	Label     string
	Value     string
	Icon      string
	SortOrder int
}

// ListTeam returns team members in display order.
func (s *PeopleService) ListTeam() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetTeamMember fetches a team member by id.
func (s *PeopleService) GetTeamMember(id uint) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// CreateTeamMember adds a team member.
func (s *PeopleService) CreateTeamMember(input TeamMemberInput) (*db.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameMissing
	}

	member := db.TeamMember{
		Name:          name,
		Title:         strings.TrimSpace(input.Title),
		Bio:           input.Bio,
		PhotoURL:      strings.TrimSpace(input.PhotoURL),
		ImageFilename: strings.TrimSpace(input.ImageFilename),
		SortOrder:     input.SortOrder,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateTeamMember modifies a team member.
func (s *PeopleService) UpdateTeamMember(id uint, input TeamMemberInput) (*db.TeamMember, error) {
	member, err := s.GetTeamMember(id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameMissing
	}

	member.Name = name
	member.Title = strings.TrimSpace(input.Title)
	member.Bio = input.Bio
	member.PhotoURL = strings.TrimSpace(input.PhotoURL)
	member.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		member.ImageFilename = filename
	}

	if err := s.db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteTeamMember removes a team member.
func (s *PeopleService) DeleteTeamMember(id uint) error {
	member, err := s.GetTeamMember(id)
	if err != nil {
		return err
	}
	return s.db.Delete(member).Error
}

// ListTestimonials returns testimonials in display order.
func (s *PeopleService) ListTestimonials() ([]db.Testimonial, error) {
	var testimonials []db.Testimonial
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// GetTestimonial fetches a testimonial by id.
func (s *PeopleService) GetTestimonial(id uint) (*db.Testimonial, error) {
	var testimonial db.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

// CreateTestimonial adds a testimonial.
func (s *PeopleService) CreateTestimonial(input TestimonialInput) (*db.Testimonial, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrTestimonialMissing
	}

	testimonial := db.Testimonial{
		AuthorName:     strings.TrimSpace(input.AuthorName),
		AuthorRole:     strings.TrimSpace(input.AuthorRole),
		AuthorPhotoURL: strings.TrimSpace(input.AuthorPhotoURL),
		ImageFilename:  strings.TrimSpace(input.ImageFilename),
		Content:        input.Content,
		SortOrder:      input.SortOrder,
	}
	if err := s.db.Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// UpdateTestimonial modifies a testimonial.
func (s *PeopleService) UpdateTestimonial(id uint, input TestimonialInput) (*db.Testimonial, error) {
	testimonial, err := s.GetTestimonial(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrTestimonialMissing
	}

	testimonial.AuthorName = strings.TrimSpace(input.AuthorName)
	testimonial.AuthorRole = strings.TrimSpace(input.AuthorRole)
	testimonial.AuthorPhotoURL = strings.TrimSpace(input.AuthorPhotoURL)
	testimonial.Content = input.Content
	testimonial.SortOrder = input.SortOrder
	if filename := strings.TrimSpace(input.ImageFilename); filename != "" {
		testimonial.ImageFilename = filename
	}

	if err := s.db.Save(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// DeleteTestimonial removes a testimonial.
func (s *PeopleService) DeleteTestimonial(id uint) error {
	testimonial, err := s.GetTestimonial(id)
	if err != nil {
		return err
	}
	return s.db.Delete(testimonial).Error
}

// ListMetrics returns impact metrics in display order.
func (s *PeopleService) ListMetrics() ([]db.ImpactMetric, error) {
	var metrics []db.ImpactMetric
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// GetMetric fetches an impact metric by id.
func (s *PeopleService) GetMetric(id uint) (*db.ImpactMetric, error) {
	var metric db.ImpactMetric
	if err := s.db.First(&metric, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMetricNotFound
		}
		return nil, err
	}
	return &metric, nil
}

// CreateMetric adds an impact metric.
func (s *PeopleService) CreateMetric(input MetricInput) (*db.ImpactMetric, error) {
	if strings.TrimSpace(input.Label) == "" || strings.TrimSpace(input.Value) == "" {
		return nil, ErrMetricLabelMissing
	}

	metric := db.ImpactMetric{
		Label:     strings.TrimSpace(input.Label),
		Value:     strings.TrimSpace(input.Value),
		Icon:      strings.TrimSpace(input.Icon),
		SortOrder: input.SortOrder,
	}
	if err := s.db.Create(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}

// UpdateMetric modifies an impact metric.
func (s *PeopleService) UpdateMetric(id uint, input MetricInput) (*db.ImpactMetric, error) {
	metric, err := s.GetMetric(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Label) == "" || strings.TrimSpace(input.Value) == "" {
		return nil, ErrMetricLabelMissing
	}

	metric.Label = strings.TrimSpace(input.Label)
	metric.Value = strings.TrimSpace(input.Value)
	metric.Icon = strings.TrimSpace(input.Icon)
	metric.SortOrder = input.SortOrder

	if err := s.db.Save(metric).Error; err != nil {
		return nil, err
	}
	return metric, nil
}

// DeleteMetric removes an impact metric.
func (s *PeopleService) DeleteMetric(id uint) error {
	metric, err := s.GetMetric(id)
	if err != nil {
		return err
	}
	return s.db.Delete(metric).Error
}
