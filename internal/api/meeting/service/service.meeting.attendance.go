// Package meetingsvc - Service điểm danh (meeting_attendances).
package meetingsvc

import (
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	meetingmodels "grip_backend/internal/api/meeting/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
)

// AttendanceService xử lý CRUD điểm danh.
type AttendanceService struct {
	*basesvc.BaseServiceMongoImpl[meetingmodels.Attendance]
}

// NewAttendanceService tạo AttendanceService mới.
func NewAttendanceService() (*AttendanceService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Attendances)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Attendances, common.ErrNotFound)
	}
	return &AttendanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[meetingmodels.Attendance](coll),
	}, nil
}
