// Package dto - DTO cho domain Member.
package dto

// MemberCreateInput dữ liệu tạo thành viên mới.
type MemberCreateInput struct {
	ChapterID string `json:"chapterId" validate:"required,objectid" transform:"str_objectid"`
	Name      string `json:"name" validate:"required,no_xss"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,no_xss"`
	Company   string `json:"company,omitempty" validate:"omitempty,no_xss"`
	IsActive  bool   `json:"isActive,omitempty"`
}

// MemberUpdateInput dữ liệu cập nhật thành viên.
// ActivePeriodID và CarryForward không nhận qua API — chỉ subsystem period được ghi.
type MemberUpdateInput struct {
	ChapterID string `json:"chapterId,omitempty" validate:"omitempty,objectid" transform:"str_objectid,optional"`
	Name      string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,no_xss"`
	Company   string `json:"company,omitempty" validate:"omitempty,no_xss"`
	IsActive  bool   `json:"isActive,omitempty"`
}
