// Package meetinghdl - Handler cho domain Meeting.
package meetinghdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	meetingdto "grip_backend/internal/api/meeting/dto"
	meetingmodels "grip_backend/internal/api/meeting/models"
	meetingsvc "grip_backend/internal/api/meeting/service"
)

// MeetingHandler xử lý các route liên quan đến buổi họp
type MeetingHandler struct {
	*basehdl.BaseHandler[meetingmodels.Meeting, meetingdto.MeetingCreateInput, meetingdto.MeetingUpdateInput]
	MeetingService *meetingsvc.MeetingService
}

// NewMeetingHandler tạo instance mới của MeetingHandler
func NewMeetingHandler() (*MeetingHandler, error) {
	meetingService, err := meetingsvc.NewMeetingService()
	if err != nil {
		return nil, fmt.Errorf("tạo MeetingService: %w", err)
	}
	return &MeetingHandler{
		BaseHandler:    basehdl.NewBaseHandler[meetingmodels.Meeting, meetingdto.MeetingCreateInput, meetingdto.MeetingUpdateInput](meetingService),
		MeetingService: meetingService,
	}, nil
}

// AttendanceHandler xử lý các route liên quan đến điểm danh
type AttendanceHandler struct {
	*basehdl.BaseHandler[meetingmodels.Attendance, meetingdto.AttendanceCreateInput, meetingdto.AttendanceUpdateInput]
	AttendanceService *meetingsvc.AttendanceService
}

// NewAttendanceHandler tạo instance mới của AttendanceHandler
func NewAttendanceHandler() (*AttendanceHandler, error) {
	attendanceService, err := meetingsvc.NewAttendanceService()
	if err != nil {
		return nil, fmt.Errorf("tạo AttendanceService: %w", err)
	}
	return &AttendanceHandler{
		BaseHandler:       basehdl.NewBaseHandler[meetingmodels.Attendance, meetingdto.AttendanceCreateInput, meetingdto.AttendanceUpdateInput](attendanceService),
		AttendanceService: attendanceService,
	}, nil
}
