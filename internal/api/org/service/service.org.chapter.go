// Package orgsvc - Service chapter (org_chapters).
package orgsvc

import (
	"context"
	"fmt"

	basesvc "grip_backend/internal/api/base/service"
	orgmodels "grip_backend/internal/api/org/models"
	"grip_backend/internal/common"
	"grip_backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChapterService xử lý CRUD chapter.
type ChapterService struct {
	*basesvc.BaseServiceMongoImpl[orgmodels.Chapter]
}

// NewChapterService tạo ChapterService mới.
func NewChapterService() (*ChapterService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Chapters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Chapters, common.ErrNotFound)
	}
	return &ChapterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[orgmodels.Chapter](coll),
	}, nil
}

// FindByZoneId trả về danh sách chapter thuộc 1 zone (chưa xóa).
func (s *ChapterService) FindByZoneId(ctx context.Context, zoneID primitive.ObjectID) ([]orgmodels.Chapter, error) {
	return s.Find(ctx, bson.M{"zoneId": zoneID, "isDeleted": false}, nil)
}
