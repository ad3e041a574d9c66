// Package dto - DTO cho domain Org (chapter).
package dto

// ChapterCreateInput dữ liệu tạo chapter mới.
type ChapterCreateInput struct {
	ZoneID     string `json:"zoneId" validate:"required,objectid" transform:"str_objectid"`
	Name       string `json:"name" validate:"required,no_xss"`
	MeetingDay string `json:"meetingDay,omitempty" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Location   string `json:"location,omitempty" validate:"omitempty,no_xss"`
	IsActive   bool   `json:"isActive,omitempty"`
}

// ChapterUpdateInput dữ liệu cập nhật chapter.
type ChapterUpdateInput struct {
	ZoneID     string `json:"zoneId,omitempty" validate:"omitempty,objectid" transform:"str_objectid,optional"`
	Name       string `json:"name,omitempty" validate:"omitempty,no_xss"`
	MeetingDay string `json:"meetingDay,omitempty" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Location   string `json:"location,omitempty" validate:"omitempty,no_xss"`
	IsActive   bool   `json:"isActive,omitempty"`
}
