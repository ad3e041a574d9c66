package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"grip_backend/internal/global"
	"grip_backend/internal/logger"
	"grip_backend/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startWorkers chạy các worker nền: rollover period và trạng thái meeting.
func startWorkers(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	rolloverWorker, err := worker.NewPeriodRolloverWorker(time.Duration(cfg.RolloverSweepHours) * time.Hour)
	if err != nil {
		log.WithError(err).Fatal("Failed to create period rollover worker")
	}
	go rolloverWorker.Start(ctx)

	meetingWorker, err := worker.NewMeetingStatusWorker(time.Duration(cfg.MeetingSweepMinutes) * time.Minute)
	if err != nil {
		log.WithError(err).Fatal("Failed to create meeting status worker")
	}
	go meetingWorker.Start(ctx)
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (colNames, validator, config, database)
	InitGlobal()

	// Khởi tạo registry collections
	InitRegistry()

	// Chạy các worker nền
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
