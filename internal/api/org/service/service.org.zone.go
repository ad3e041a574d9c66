// Package orgsvc - Service cho domain Org (zone, chapter).
package orgsvc

import (
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	orgmodels "grip_backend/internal/api/org/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"
)

// ZoneService xử lý CRUD zone.
type ZoneService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Zone]
}

// NewZoneService tạo ZoneService mới.
func NewZoneService() (*ZoneService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Zones)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Zones, common.ErrNotFound)
	}
	return &ZoneService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Zone](coll),
	}, nil
}
