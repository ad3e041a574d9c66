// Package models - Zone thuộc domain Org (org_zones).
// Zone là cấp tổ chức cao nhất, mỗi zone gồm nhiều chapter.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Zone lưu thông tin khu vực (org_zones).
type Zone struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name        string `json:"name" bson:"name" index:"unique"` // Tên zone, duy nhất toàn hệ thống
	Description string `json:"description,omitempty" bson:"description,omitempty"`

	// Flags
	IsActive  bool `json:"isActive" bson:"isActive"`
	IsDeleted bool `json:"isDeleted" bson:"isDeleted" index:"single:1"` // Soft delete

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"` // Unix ms
}
