// Package dto - DTO cho khách mời.
package dto

// VisitorCreateInput dữ liệu tạo khách mời mới.
type VisitorCreateInput struct {
	ChapterID   string `json:"chapterId" validate:"required,objectid" transform:"str_objectid"`
	InvitedByID string `json:"invitedById" validate:"required,objectid" transform:"str_objectid"`
	Name        string `json:"name" validate:"required,no_xss"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,no_xss"`
	Company     string `json:"company,omitempty" validate:"omitempty,no_xss"`
	VisitDate   int64  `json:"visitDate,omitempty"` // Unix ms
}

// VisitorUpdateInput dữ liệu cập nhật khách mời.
type VisitorUpdateInput struct {
	Name      string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,no_xss"`
	Company   string `json:"company,omitempty" validate:"omitempty,no_xss"`
	VisitDate int64  `json:"visitDate,omitempty"` // Unix ms
}
