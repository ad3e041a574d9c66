package middleware

import (
	"fmt"
	"strings"

	"grip_backend/internal/common"
	"grip_backend/internal/global"
	"grip_backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// TokenClaims là claims tối thiểu trong access token.
// Token được phát hành bởi hệ thống auth bên ngoài, service này chỉ xác thực.
type TokenClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware middleware xác thực JWT cho Fiber.
// Parse và verify Bearer token từ header Authorization bằng HMAC secret.
// Nếu requireRole khác rỗng, claims phải có role khớp mới được truy cập.
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		tokenStr := parts[1]

		claims := &TokenClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})

		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token validation failed")

			if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if !token.Valid || claims.UserID == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", claims.Role)

		// Nếu không yêu cầu role cụ thể, cho phép truy cập ngay
		if requireRole == "" {
			return c.Next()
		}

		// Kiểm tra role của user có khớp với yêu cầu không
		if claims.Role != requireRole {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":       claims.UserID,
				"user_role":     claims.Role,
				"required_role": requireRole,
				"path":          c.Path(),
			}).Warn("❌ [AUTH] User does not have required role")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthToken,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}
