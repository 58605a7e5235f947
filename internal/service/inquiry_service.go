package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"gorm.io/gorm"
)

var (
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInquiryTooFast       = errors.New("submission too fast")
	ErrInquiryFieldsMissing = errors.New("name and email are required")
	ErrInquiryStatusInvalid = errors.New("inquiry status is invalid")
	ErrInquiryTypeNotFound  = errors.New("inquiry type not found")
)

// minSubmitIntervalMs 为表单渲染到提交之间允许的最短毫秒数，低于该值按机器人处理。
const minSubmitIntervalMs = 3000

// genericInquiryLabel 在咨询类型无法解析时用于回执文案。
const genericInquiryLabel = "General Inquiry"

// InquiryService runs the public contact-form intake pipeline and the
// admin-side status workflow.
type InquiryService struct {
	db *gorm.DB
}

// NewInquiryService creates an InquiryService instance.
func NewInquiryService(gdb *gorm.DB) *InquiryService {
	return &InquiryService{db: gdb}
}

// InquirySubmission carries the raw public form fields. Honeypot is a hidden
// field humans never fill; InquiryTypeRaw is the unparsed select value.
type InquirySubmission struct {
	Name           string
	Email          string
	Phone          string
	Organization   string
	Message        string
	InquiryTypeRaw string
	Honeypot       string
}

// SubmitResult reports the outcome of a submission. Discarded marks a
// honeypot hit: the response must look like success while nothing was
// written.
type SubmitResult struct {
	Inquiry   *db.Inquiry
	TypeName  string
	Discarded bool
}

// Submit runs the spam checks and persists the inquiry with status New.
// clientMs is the timestamp the form embedded at render time, serverMs the
// arrival time; a gap under 3 seconds is rejected while a missing or
// malformed client timestamp passes the check. Both checks run before any
// write, so a rejection never needs a rollback.
func (s *InquiryService) Submit(in InquirySubmission, clientMs, serverMs int64) (*SubmitResult, error) {
	if strings.TrimSpace(in.Honeypot) != "" {
		return &SubmitResult{TypeName: genericInquiryLabel, Discarded: true}, nil
	}

	if clientMs > 0 && serverMs-clientMs < minSubmitIntervalMs {
		return nil, ErrInquiryTooFast
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, ErrInquiryFieldsMissing
	}

	typeID, typeName := s.resolveType(in.InquiryTypeRaw)

	inquiry := db.Inquiry{
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		Organization:  strings.TrimSpace(in.Organization),
		InquiryTypeID: typeID,
		Message:       in.Message,
		Status:        db.InquiryStatusNew,
	}
	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, err
	}

	return &SubmitResult{Inquiry: &inquiry, TypeName: typeName}, nil
}

// resolveType links the inquiry type only when the raw value parses as an
// integer naming an existing record; anything else leaves the link unset.
func (s *InquiryService) resolveType(raw string) (*uint, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, genericInquiryLabel
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || parsed == 0 {
		return nil, genericInquiryLabel
	}

	var inquiryType db.InquiryType
	if err := s.db.First(&inquiryType, uint(parsed)).Error; err != nil {
		return nil, genericInquiryLabel
	}
	return &inquiryType.ID, inquiryType.Name
}

// List returns all inquiries, newest first.
func (s *InquiryService) List() ([]db.Inquiry, error) {
	var inquiries []db.Inquiry
	if err := s.db.Order("created_at desc").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// Get fetches an inquiry by id.
func (s *InquiryService) Get(id uint) (*db.Inquiry, error) {
	var inquiry db.Inquiry
	if err := s.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// CountByStatus returns the number of inquiries in a given status.
func (s *InquiryService) CountByStatus(status string) (int64, error) {
	var count int64
	if err := s.db.Model(&db.Inquiry{}).Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus moves an inquiry to a new status. Any of New/Replied/Closed
// may follow any other; a value outside the set leaves the record untouched
// and returns ErrInquiryStatusInvalid.
func (s *InquiryService) UpdateStatus(id uint, status string) (*db.Inquiry, error) {
	if !validInquiryStatus(status) {
		return nil, ErrInquiryStatusInvalid
	}

	inquiry, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	inquiry.Status = status
	if err := s.db.Save(inquiry).Error; err != nil {
		return nil, err
	}
	return inquiry, nil
}

// Delete removes an inquiry.
func (s *InquiryService) Delete(id uint) error {
	inquiry, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(inquiry).Error
}

func validInquiryStatus(status string) bool {
	switch status {
	case db.InquiryStatusNew, db.InquiryStatusReplied, db.InquiryStatusClosed:
		return true
	}
	return false
}

// InquiryTypeInput represents fields accepted for an inquiry type.
type InquiryTypeInput struct {
	Name      string
	Value     string
	SortOrder int
}

// ListTypes returns inquiry types in display order.
func (s *InquiryService) ListTypes() ([]db.InquiryType, error) {
	var types []db.InquiryType
	if err := s.db.Order("sort_order asc").Order("id asc").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetType fetches an inquiry type by id.
func (s *InquiryService) GetType(id uint) (*db.InquiryType, error) {
	var inquiryType db.InquiryType
	if err := s.db.First(&inquiryType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryTypeNotFound
		}
		return nil, err
	}
	return &inquiryType, nil
}

// CreateType adds an inquiry type.
func (s *InquiryService) CreateType(input InquiryTypeInput) (*db.InquiryType, error) {
	inquiryType := db.InquiryType{
		Name:      strings.TrimSpace(input.Name),
		Value:     strings.TrimSpace(input.Value),
		SortOrder: input.SortOrder,
	}
	if err := s.db.Create(&inquiryType).Error; err != nil {
		return nil, err
	}
	return &inquiryType, nil
}

// UpdateType modifies an inquiry type.
func (s *InquiryService) UpdateType(id uint, input InquiryTypeInput) (*db.InquiryType, error) {
	inquiryType, err := s.GetType(id)
	if err != nil {
		return nil, err
	}

	inquiryType.Name = strings.TrimSpace(input.Name)
	inquiryType.Value = strings.TrimSpace(input.Value)
	inquiryType.SortOrder = input.SortOrder

	if err := s.db.Save(inquiryType).Error; err != nil {
		return nil, err
	}
	return inquiryType, nil
}

// DeleteType removes an inquiry type.
func (s *InquiryService) DeleteType(id uint) error {
	inquiryType, err := s.GetType(id)
	if err != nil {
		return err
	}
	return s.db.Delete(inquiryType).Error
}
