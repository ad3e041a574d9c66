// Package membersvc - Service khách mời (member_visitors).
package membersvc

import (
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	membermodels "grip_backend/internal/api/member/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
)

// VisitorService xử lý CRUD khách mời.
type VisitorService struct {
	*basesvc.BaseServiceMongoImpl[membermodels.Visitor]
}

// NewVisitorService tạo VisitorService mới.
func NewVisitorService() (*VisitorService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Visitors)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Visitors, common.ErrNotFound)
	}
	return &VisitorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[membermodels.Visitor](coll),
	}, nil
}
