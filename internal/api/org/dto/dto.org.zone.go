// Package dto - DTO cho domain Org (zone).
package dto

// ZoneCreateInput dữ liệu tạo zone mới.
type ZoneCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	IsActive    bool   `json:"isActive,omitempty"`
}

// ZoneUpdateInput dữ liệu cập nhật zone.
type ZoneUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
	IsActive    bool   `json:"isActive,omitempty"`
}
