package global

import (
	"grip_backend/config"
	"grip_backend/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Zones        string // Tên collection cho zone
	Chapters     string // Tên collection cho chapter
	Members      string // Tên collection cho thành viên
	Visitors     string // Tên collection cho khách mời
	Meetings     string // Tên collection cho buổi họp/training
	Attendances  string // Tên collection cho điểm danh
	OneToOnes    string // Tên collection cho slip gặp 1-1
	Referrals    string // Tên collection cho slip giới thiệu
	Testimonials string // Tên collection cho slip cảm nhận
	ThankYous    string // Tên collection cho slip cảm ơn (doanh thu)
	Periods      string // Tên collection cho period chấm điểm 6 tháng
}

// Các biến toàn cục
var Validate *validator.Validate          // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client         // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration    // Cấu hình của server
var ColNames CollectionNames              // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
