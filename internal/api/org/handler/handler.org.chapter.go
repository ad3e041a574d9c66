// Package orghdl - Handler chapter.
package orghdl

import (
	"fmt"

	basehdl "grip_backend/internal/api/base/handler"
	orgdto "grip_backend/internal/api/org/dto"
	orgmodels "grip_backend/internal/api/org/models"
	orgsvc "grip_backend/internal/api/org/service"
)

// ChapterHandler xử lý các route liên quan đến chapter
type ChapterHandler struct {
	*basehdl.BaseHandler[orgmodels.Chapter, orgdto.ChapterCreateInput, orgdto.ChapterUpdateInput]
	ChapterService *orgsvc.ChapterService
}

// NewChapterHandler tạo instance mới của ChapterHandler
func NewChapterHandler() (*ChapterHandler, error) {
	chapterService, err := orgsvc.NewChapterService()
	if err != nil {
		return nil, fmt.Errorf("tạo ChapterService: %w", err)
	}
	return &ChapterHandler{
		BaseHandler: basehdl.NewBaseHandler[orgmodels.Chapter, orgdto.ChapterCreateInput, orgdto.ChapterUpdateInput](chapterService),
		ChapterService: chapterService,
	}, nil
}
