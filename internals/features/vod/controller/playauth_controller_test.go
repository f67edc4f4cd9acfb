package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"videoku_backend/internals/configs"
	commentModel "videoku_backend/internals/features/comments/model"
	videoModel "videoku_backend/internals/features/videos/model"
)

var testDBSeq int

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	// provider sengaja tidak dikonfigurasi
	configs.AliyunAccessKeyID = ""
	configs.AliyunAccessKeySecret = ""

	testDBSeq++
	dsn := fmt.Sprintf("file:vodctrl_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&videoModel.VideoModel{}, &commentModel.CommentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewPlayAuthController(db)
	app.Get("/api/videos/:id/playauth", ctrl.GetPlayAuth)
	return app, db
}

func TestPlayAuthUnknownVideo(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos/nope/playauth", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestPlayAuthVideoWithoutVodID(t *testing.T) {
	app, db := newTestApp(t)
	v := videoModel.VideoModel{VideoTitle: "v", VideoURL: "https://cdn.example.com/v.mp4"}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos/"+v.VideoID+"/playauth", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestPlayAuthUpstreamFailure(t *testing.T) {
	app, db := newTestApp(t)
	v := videoModel.VideoModel{
		VideoTitle: "v",
		VideoURL:   "https://cdn.example.com/v.mp4",
		VideoVodID: "vod-123",
	}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// provider tidak dikonfigurasi → gagal upstream, bukan 500 internal
	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos/"+v.VideoID+"/playauth", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("want 502, got %d", resp.StatusCode)
	}
}
