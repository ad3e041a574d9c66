package main

import (
	"context"

	"grip_backend/config"
	meetingmodels "grip_backend/internal/api/meeting/models"
	membermodels "grip_backend/internal/api/member/models"
	orgmodels "grip_backend/internal/api/org/models"
	periodmodels "grip_backend/internal/api/period/models"
	slipmodels "grip_backend/internal/api/slip/models"
	"grip_backend/internal/database"
	"grip_backend/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Zones = "org_zones"
	global.ColNames.Chapters = "org_chapters"
	global.ColNames.Members = "members"
	global.ColNames.Visitors = "member_visitors"
	global.ColNames.Meetings = "meetings"
	global.ColNames.Attendances = "meeting_attendances"
	global.ColNames.OneToOnes = "slip_one_to_ones"
	global.ColNames.Referrals = "slip_referrals"
	global.ColNames.Testimonials = "slip_testimonials"
	global.ColNames.ThankYous = "slip_thank_yous"
	global.ColNames.Periods = "periods"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, objectid)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Zones), orgmodels.Zone{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Chapters), orgmodels.Chapter{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Members), membermodels.Member{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Visitors), membermodels.Visitor{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Meetings), meetingmodels.Meeting{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Attendances), meetingmodels.Attendance{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.OneToOnes), slipmodels.OneToOneSlip{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Referrals), slipmodels.ReferralSlip{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Testimonials), slipmodels.TestimonialSlip{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.ThankYous), slipmodels.ThankYouSlip{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Periods), periodmodels.Period{})
}
