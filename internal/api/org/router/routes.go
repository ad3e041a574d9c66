// Package router đăng ký các route thuộc domain Org: zones, chapters.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orghdl "grip_backend/internal/api/org/handler"
	apirouter "grip_backend/internal/api/router"
)

// Register đăng ký tất cả route Org lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	zoneHandler, err := orghdl.NewZoneHandler()
	if err != nil {
		return fmt.Errorf("tạo ZoneHandler: %w", err)
	}
	chapterHandler, err := orghdl.NewChapterHandler()
	if err != nil {
		return fmt.Errorf("tạo ChapterHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/zones", zoneHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/chapters", chapterHandler, apirouter.ReadWriteConfig)

	return nil
}
