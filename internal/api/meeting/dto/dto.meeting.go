// Package dto - DTO cho domain Meeting.
package dto

// MeetingCreateInput dữ liệu tạo buổi họp/đào tạo mới.
type MeetingCreateInput struct {
	ChapterID string `json:"chapterId" validate:"required,objectid" transform:"str_objectid"`
	Title     string `json:"title" validate:"required,no_xss"`
	Purpose   string `json:"purpose" validate:"required,oneof=Meeting Training meeting training"`
	Location  string `json:"location,omitempty" validate:"omitempty,no_xss"`
	StartDate int64  `json:"startDate" validate:"required"` // Unix ms
	EndDate   int64  `json:"endDate,omitempty"`             // Unix ms
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// MeetingUpdateInput dữ liệu cập nhật buổi họp.
type MeetingUpdateInput struct {
	Title     string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Purpose   string `json:"purpose,omitempty" validate:"omitempty,oneof=Meeting Training meeting training"`
	Location  string `json:"location,omitempty" validate:"omitempty,no_xss"`
	StartDate int64  `json:"startDate,omitempty"` // Unix ms
	EndDate   int64  `json:"endDate,omitempty"`   // Unix ms
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// AttendanceCreateInput dữ liệu điểm danh 1 thành viên tại 1 buổi họp.
type AttendanceCreateInput struct {
	MeetingID string `json:"meetingId" validate:"required,objectid" transform:"str_objectid"`
	MemberID  string `json:"memberId" validate:"required,objectid" transform:"str_objectid"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
	OnTime    bool   `json:"onTime,omitempty"`
}

// AttendanceUpdateInput dữ liệu cập nhật điểm danh.
type AttendanceUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=present absent late"`
	OnTime bool   `json:"onTime,omitempty"`
}
