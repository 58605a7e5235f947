package db

import "gorm.io/gorm"

// 咨询状态的封闭集合，任何状态都可以切换到另外两个状态。
const (
	InquiryStatusNew     = "New"
	InquiryStatusReplied = "Replied"
	InquiryStatusClosed  = "Closed"
)

// Inquiry 记录公开联系表单提交的咨询。
type Inquiry struct {
	gorm.Model
	Name          string `gorm:"size:128;not null"`
	Email         string `gorm:"size:128;not null"`
	Phone         string `gorm:"size:64"`
	Organization  string
	InquiryTypeID *uint  `gorm:"index"`
	Message       string `gorm:"type:text"`
	Status        string `gorm:"size:64;default:New"`
}

// InquiryType 是咨询分类的查找表，供联系表单下拉选择。
type InquiryType struct {
	gorm.Model
	Name      string `gorm:"size:128"`
	Value     string `gorm:"size:128"`
	SortOrder int    `gorm:"default:0"`
}
