package router

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"grip_backend/config"
	"grip_backend/internal/global"
)

// stubCRUDHandler ghi nhận param để kiểm tra pattern route, không đụng DB.
type stubCRUDHandler struct{}

func (s *stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return c.SendStatus(200) }
func (s *stubCRUDHandler) InsertMany(c fiber.Ctx) error         { return c.SendStatus(200) }
func (s *stubCRUDHandler) Find(c fiber.Ctx) error               { return c.SendStatus(200) }
func (s *stubCRUDHandler) FindOne(c fiber.Ctx) error            { return c.SendStatus(200) }
func (s *stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return c.SendStatus(200) }
func (s *stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return c.SendStatus(200) }
func (s *stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return c.SendStatus(200) }
func (s *stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return c.SendStatus(200) }
func (s *stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return c.SendStatus(200) }
func (s *stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return c.SendStatus(200) }
func (s *stubCRUDHandler) DeleteMany(c fiber.Ctx) error         { return c.SendStatus(200) }
func (s *stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return c.SendStatus(200) }
func (s *stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return c.SendStatus(200) }
func (s *stubCRUDHandler) Upsert(c fiber.Ctx) error             { return c.SendStatus(200) }
func (s *stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return c.SendStatus(200) }

// Distinct trả lại param :field để test xác nhận route truyền đúng tên trường.
func (s *stubCRUDHandler) Distinct(c fiber.Ctx) error { return c.SendString(c.Params("field")) }

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": "tester",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("ký token test lỗi: %v", err)
	}
	return signed
}

func TestRegisterCRUDRoutes_DistinctNhanThamSoField(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret"}

	app := fiber.New()
	v1 := app.Group("/api/v1")
	r := NewRouter(app)
	r.RegisterCRUDRoutes(v1, "/members", &stubCRUDHandler{}, ReadOnlyConfig)

	req := httptest.NewRequest("GET", "/api/v1/members/distinct/company", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("gọi route distinct lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("route distinct phải trả 200, nhận được %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("đọc body lỗi: %v", err)
	}
	if string(body) != "company" {
		t.Fatalf("handler phải nhận được field 'company' từ URI param, nhận được %q", string(body))
	}
}
