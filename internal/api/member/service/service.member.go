// Package membersvc - Service cho domain Member (thành viên, khách mời).
package membersvc

import (
	"context"
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	membermodels "grip_backend/internal/api/member/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberService xử lý CRUD thành viên và các thao tác trạng thái chấm điểm.
type MemberService struct {
	*basesvc.BaseServiceMongoImpl[membermodels.Member]
}

// NewMemberService tạo MemberService mới.
func NewMemberService() (*MemberService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Members)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Members, common.ErrNotFound)
	}
	return &MemberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[membermodels.Member](coll),
	}, nil
}

// FindActiveMembers trả về danh sách thành viên đang hoạt động (chưa xóa).
// Worker rollover dùng hàm này để quét hàng ngày.
func (s *MemberService) FindActiveMembers(ctx context.Context) ([]membermodels.Member, error) {
	return s.Find(ctx, bson.M{"isActive": true, "isDeleted": false}, nil)
}

// SetActivePeriod gán period đang mở cho thành viên.
func (s *MemberService) SetActivePeriod(ctx context.Context, memberID, periodID primitive.ObjectID) error {
	_, err := s.UpdateOne(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"activePeriodId": periodID}},
		nil,
	)
	return err
}

// SetCarryForward ghi số dư chuyển kỳ và period mới cho thành viên khi rollover.
func (s *MemberService) SetCarryForward(ctx context.Context, memberID primitive.ObjectID, cf membermodels.MemberCarryForward) error {
	_, err := s.UpdateOne(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"carryForward": cf}},
		nil,
	)
	return err
}
