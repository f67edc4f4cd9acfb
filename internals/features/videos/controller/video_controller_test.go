package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"videoku_backend/internals/configs"
	commentModel "videoku_backend/internals/features/comments/model"
	"videoku_backend/internals/features/videos/dto"
	"videoku_backend/internals/features/videos/model"
)

var testDBSeq int

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.VideosPerPage = 12
	configs.CommentsPerPage = 20
	configs.AdminPerPage = 20

	testDBSeq++
	dsn := fmt.Sprintf("file:videoctrl_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.VideoModel{}, &commentModel.CommentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	publicCtrl := NewVideoController(db)
	adminCtrl := NewVideoAdminController(db)
	app.Get("/api/videos", publicCtrl.ListVideos)
	app.Get("/api/videos/:id", publicCtrl.GetVideoDetail)
	app.Post("/api/a/videos", adminCtrl.CreateVideo)
	app.Post("/api/a/videos/normalize", adminCtrl.NormalizeVideos)
	app.Post("/api/a/videos/:id/view-count", adminCtrl.UpdateViewCount)
	app.Post("/api/a/videos/:id/delete", adminCtrl.DeleteVideo)
	app.Post("/api/a/videos/:id/reorder", adminCtrl.ReorderVideo)

	return app, db
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(b)
}

func seedVideo(t *testing.T, db *gorm.DB, title string, orderIndex int, createdAt time.Time) model.VideoModel {
	t.Helper()
	v := model.VideoModel{
		VideoTitle:      title,
		VideoURL:        "https://cdn.example.com/" + title + ".mp4",
		VideoOrderIndex: orderIndex,
		VideoCreatedAt:  createdAt,
	}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed video: %v", err)
	}
	return v
}

type detailEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Video    dto.VideoDTO `json:"video"`
		Comments []struct {
			CommentID      string `json:"comment_id"`
			CommentName    string `json:"comment_name"`
			CommentContent string `json:"comment_content"`
		} `json:"comments"`
	} `json:"data"`
}

func TestListVideosDisplayOrder(t *testing.T) {
	app, db := newTestApp(t)
	base := time.Now().UTC()

	older := seedVideo(t, db, "older", 1, base)
	newer := seedVideo(t, db, "newer", 1, base.Add(time.Minute))
	last := seedVideo(t, db, "last", 2, base)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var body struct {
		Data       []dto.VideoDTO `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Pagination.Total != 3 {
		t.Fatalf("total: want 3, got %d", body.Pagination.Total)
	}
	// index 1 dulu; sesama index 1, yang lebih baru duluan
	wantOrder := []string{newer.VideoID, older.VideoID, last.VideoID}
	for i, want := range wantOrder {
		if body.Data[i].VideoID != want {
			t.Errorf("position %d: want %s, got %s", i, want, body.Data[i].VideoID)
		}
	}
}

func TestGetVideoDetailNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos/00000000-0000-0000-0000-000000000000", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status: want 404, got %d", resp.StatusCode)
	}
}

func TestGetVideoDetailIncrementsViewCount(t *testing.T) {
	app, db := newTestApp(t)
	v := seedVideo(t, db, "v", 1, time.Now().UTC())

	const n = 5
	for i := 0; i < n; i++ {
		// halaman komentar yang diminta tidak boleh mempengaruhi hitungan
		url := fmt.Sprintf("/api/videos/%s?page=%d", v.VideoID, i+1)
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: status %d", i, resp.StatusCode)
		}
	}

	var reloaded model.VideoModel
	if err := db.First(&reloaded, "video_id = ?", v.VideoID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.VideoViewCount != n {
		t.Fatalf("view count: want %d, got %d", n, reloaded.VideoViewCount)
	}
}

func TestGetVideoDetailShowsOnlyApprovedComments(t *testing.T) {
	app, db := newTestApp(t)
	v := seedVideo(t, db, "v", 1, time.Now().UTC())

	approved := commentModel.CommentModel{
		CommentVideoID:    v.VideoID,
		CommentName:       "Siti",
		CommentPhone:      "08123456789",
		CommentContent:    "bagus",
		CommentIsApproved: true,
	}
	pending := commentModel.CommentModel{
		CommentVideoID: v.VideoID,
		CommentName:    "Budi",
		CommentPhone:   "08123456780",
		CommentContent: "menunggu moderasi",
	}
	if err := db.Create(&approved).Error; err != nil {
		t.Fatalf("seed approved: %v", err)
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/videos/"+v.VideoID, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body detailEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Comments) != 1 {
		t.Fatalf("comments: want only the approved one, got %d", len(body.Data.Comments))
	}
	if body.Data.Comments[0].CommentID != approved.CommentID {
		t.Errorf("unexpected comment %s", body.Data.Comments[0].CommentID)
	}
}

func TestAdminUpdateViewCount(t *testing.T) {
	app, db := newTestApp(t)
	v := seedVideo(t, db, "v", 1, time.Now().UTC())

	req := httptest.NewRequest("POST", "/api/a/videos/"+v.VideoID+"/view-count",
		jsonBody(t, map[string]any{"view_count": 999}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var reloaded model.VideoModel
	if err := db.First(&reloaded, "video_id = ?", v.VideoID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.VideoViewCount != 999 {
		t.Fatalf("view count: want 999, got %d", reloaded.VideoViewCount)
	}

	// nilai negatif ditolak
	req = httptest.NewRequest("POST", "/api/a/videos/"+v.VideoID+"/view-count",
		jsonBody(t, map[string]any{"view_count": -1}))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("negative view count: want 400, got %d", resp.StatusCode)
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func TestAdminCreateVideoDefaultsOrderIndex(t *testing.T) {
	app, db := newTestApp(t)
	configs.MediaRewriteHosts = []string{"videos.oss-cn-hangzhou.aliyuncs.com"}
	seedVideo(t, db, "existing", 5, time.Now().UTC())

	form := url.Values{}
	form.Set("title", "Video Baru")
	form.Set("video_url", "https://videos.oss-cn-hangzhou.aliyuncs.com/uploads/baru.mp4")
	resp := postForm(t, app, "/api/a/videos", form)
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status: want 201, got %d", resp.StatusCode)
	}

	var created model.VideoModel
	if err := db.First(&created, "video_title = ?", "Video Baru").Error; err != nil {
		t.Fatalf("load created: %v", err)
	}
	if created.VideoOrderIndex != 6 {
		t.Errorf("order index: want max+1=6, got %d", created.VideoOrderIndex)
	}
	if created.VideoURL != "/media/uploads/baru.mp4" {
		t.Errorf("video_url not rewritten: %q", created.VideoURL)
	}
}

func TestAdminCreateVideoExplicitOrderIndex(t *testing.T) {
	app, db := newTestApp(t)
	configs.MediaRewriteHosts = nil

	form := url.Values{}
	form.Set("title", "Eksplisit")
	form.Set("video_url", "https://cdn.example.com/x.mp4")
	form.Set("order_index", "42")
	resp := postForm(t, app, "/api/a/videos", form)
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status: want 201, got %d", resp.StatusCode)
	}

	var created model.VideoModel
	if err := db.First(&created, "video_title = ?", "Eksplisit").Error; err != nil {
		t.Fatalf("load created: %v", err)
	}
	if created.VideoOrderIndex != 42 {
		t.Errorf("order index: want 42, got %d", created.VideoOrderIndex)
	}
}

func TestAdminCreateVideoValidation(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{}
	form.Set("title", "   ")
	form.Set("video_url", "https://cdn.example.com/x.mp4")
	resp := postForm(t, app, "/api/a/videos", form)
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("blank title: want 422, got %d", resp.StatusCode)
	}
}

func TestReorderEndpointBoundaryAck(t *testing.T) {
	app, db := newTestApp(t)
	top := seedVideo(t, db, "top", 1, time.Now().UTC())
	seedVideo(t, db, "bottom", 2, time.Now().UTC())

	form := url.Values{}
	form.Set("direction", "up")
	resp := postForm(t, app, "/api/a/videos/"+top.VideoID+"/reorder", form)
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("boundary reorder must be 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Moved bool `json:"moved"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Moved {
		t.Fatal("boundary reorder must report moved=false")
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	base := time.Now().UTC()
	seedVideo(t, db, "a", 10, base)
	seedVideo(t, db, "b", 4, base.Add(time.Minute))
	seedVideo(t, db, "c", 4, base.Add(2*time.Minute))

	resp := postForm(t, app, "/api/a/videos/normalize", url.Values{})
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var indexes []int
	if err := db.Model(&model.VideoModel{}).
		Order("video_order_index ASC").
		Pluck("video_order_index", &indexes).Error; err != nil {
		t.Fatalf("pluck: %v", err)
	}
	for i, idx := range indexes {
		if idx != i+1 {
			t.Fatalf("indexes not dense 1..N: %v", indexes)
		}
	}
}

func TestAdminDeleteVideoCascadesComments(t *testing.T) {
	app, db := newTestApp(t)
	v := seedVideo(t, db, "v", 1, time.Now().UTC())
	keep := seedVideo(t, db, "keep", 2, time.Now().UTC())

	for i := 0; i < 3; i++ {
		cm := commentModel.CommentModel{
			CommentVideoID: v.VideoID,
			CommentName:    "X",
			CommentPhone:   "08123456789",
			CommentContent: "isi",
		}
		if err := db.Create(&cm).Error; err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}
	other := commentModel.CommentModel{
		CommentVideoID: keep.VideoID,
		CommentName:    "Y",
		CommentPhone:   "08123456789",
		CommentContent: "tetap ada",
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other comment: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/api/a/videos/"+v.VideoID+"/delete", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var orphans int64
	if err := db.Model(&commentModel.CommentModel{}).
		Where("comment_video_id = ?", v.VideoID).
		Count(&orphans).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("orphaned comments left: %d", orphans)
	}

	var remaining int64
	if err := db.Model(&commentModel.CommentModel{}).
		Where("comment_video_id = ?", keep.VideoID).
		Count(&remaining).Error; err != nil {
		t.Fatalf("count remaining: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("comment of other video must survive, got %d", remaining)
	}
}
