// Package orghdl - Handler cho domain Org (zone, chapter).
package orghdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	orgdto "grip_backend/internal/api/org/dto"
	orgmodels "grip_backend/internal/api/org/models"
	orgsvc "grip_backend/internal/api/org/service"
)

// ZoneHandler xử lý các route liên quan đến zone
type ZoneHandler struct {
	*basehdl.BaseHandler[orgmodels.Zone, orgdto.ZoneCreateInput, orgdto.ZoneUpdateInput]
	ZoneService *orgsvc.ZoneService
}

// NewZoneHandler tạo instance mới của ZoneHandler
func NewZoneHandler() (*ZoneHandler, error) {
	zoneService, err := orgsvc.NewZoneService()
	if err != nil {
		return nil, fmt.Errorf("tạo ZoneService: %w", err)
	}
	return &ZoneHandler{
		BaseHandler: basehdl.NewBaseHandler[orgmodels.Zone, orgdto.ZoneCreateInput, orgdto.ZoneUpdateInput](zoneService),
		ZoneService: zoneService,
	}, nil
}
