// Package models - Period thuộc domain Period (periods).
// Mỗi period là một cửa sổ chấm điểm 6 tháng của đúng 1 thành viên.
// Bất biến: mỗi thành viên có tối đa 1 period đang mở (isClosed=false);
// startDate < endDate; period đã đóng là bất biến; không bao giờ hard-delete.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên các hạng mục chấm điểm. attendanceDays (số buổi họp có mặt) là metric thô,
// được chấm theo hạng mục "attendance" — mapping này là chủ ý, giữ tường minh.
const (
	CategoryOneToOne     = "oneToOne"
	CategoryReferrals    = "referrals"
	CategoryVisitors     = "visitors"
	CategoryTrainings    = "trainings"
	CategoryBusiness     = "business"
	CategoryTestimonials = "testimonials"
	CategoryAttendance   = "attendance"
)

// ScoreCategories liệt kê các hạng mục theo thứ tự cố định (ổn định cho response và test).
var ScoreCategories = []string{
	CategoryOneToOne,
	CategoryReferrals,
	CategoryVisitors,
	CategoryTrainings,
	CategoryBusiness,
	CategoryTestimonials,
	CategoryAttendance,
}

// CategoryValues là map hạng mục -> giá trị điểm/số dư.
type CategoryValues map[string]float64

// PeriodMetrics lưu số liệu thô tích lũy của period, cập nhật sau mỗi lần chạy report.
type PeriodMetrics struct {
	OneToOne       int64   `json:"oneToOne" bson:"oneToOne"`             // Số slip gặp 1-1 (initiator)
	Referrals      int64   `json:"referrals" bson:"referrals"`           // Số slip giới thiệu (initiator)
	Visitors       int64   `json:"visitors" bson:"visitors"`             // Số khách mời (invitedBy)
	Trainings      int64   `json:"trainings" bson:"trainings"`           // Số buổi training có mặt
	Business       float64 `json:"business" bson:"business"`             // Tổng doanh thu cảm ơn (sender)
	Testimonials   int64   `json:"testimonials" bson:"testimonials"`     // Số slip cảm nhận (initiator)
	AttendanceDays int64   `json:"attendanceDays" bson:"attendanceDays"` // Số buổi họp thường có mặt
	OnTimeDays     int64   `json:"onTimeDays" bson:"onTimeDays"`         // Số buổi họp thường có mặt đúng giờ
}

// Period lưu một kỳ chấm điểm 6 tháng (periods).
type Period struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	MemberID primitive.ObjectID `json:"memberId" bson:"memberId" index:"single:1,compound:period_member_open"` // Thành viên sở hữu

	StartDate int64 `json:"startDate" bson:"startDate"`                  // Unix ms — đầu kỳ
	EndDate   int64 `json:"endDate" bson:"endDate" index:"single:1"`     // Unix ms — cuối kỳ (start + 6 tháng)
	IsClosed  bool  `json:"isClosed" bson:"isClosed" index:"compound:period_member_open"` // Đã đóng (trạng thái cuối)

	Metrics PeriodMetrics `json:"metrics" bson:"metrics"` // Số liệu thô 7 tháng gần nhất

	CarryForward     CategoryValues `json:"carryForward" bson:"carryForward"`         // Số dư chuyển từ kỳ trước (theo hạng mục)
	Totals           CategoryValues `json:"totals" bson:"totals"`                     // Tổng thô theo hạng mục (attendance lấy từ attendanceDays)
	CarryForwardUsed CategoryValues `json:"carryForwardUsed" bson:"carryForwardUsed"` // Phần số dư đã tiêu trong kỳ này

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"` // Unix ms
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                  // Unix ms
}
