package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubHTMLRender 让处理器测试无需加载模板文件即可渲染 HTML 响应。
type stubHTMLRender struct{}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	return &stubHTMLInstance{name: name, data: data}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupContactTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:contact-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/static/uploads")

	r := gin.New()
	r.HTMLRender = &stubHTMLRender{}
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("eidikos_session", store))
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	return r, gdb
}

func setupNewsTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:news-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/static/uploads")

	r := gin.New()
	r.HTMLRender = &stubHTMLRender{}
	r.GET("/news-impact", api.NewsImpact)
	r.GET("/news-impact/:id", api.NewsDetail)
	r.NoRoute(api.NotFound)

	return r, gdb
}

func TestNewsDetail_ServedUnderNewsImpactPath(t *testing.T) {
	r, gdb := setupNewsTestRouter(t)

	article := db.NewsArticle{Title: "Trade Fair Recap", Content: "A full house."}
	if err := gdb.Create(&article).Error; err != nil {
		t.Fatalf("create article: %v", err)
	}

	req := httptest.NewRequest("GET", fmt.Sprintf("/news-impact/%d", article.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected article detail at /news-impact/:id, got %d", w.Code)
	}

	// 列表页与详情页共存于同一前缀
	req = httptest.NewRequest("GET", "/news-impact", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected article list at /news-impact, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", fmt.Sprintf("/news/%d", article.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside /news-impact prefix, got %d", w.Code)
	}
}

func TestNewsDetail_UnknownIDReturns404(t *testing.T) {
	r, _ := setupNewsTestRouter(t)

	req := httptest.NewRequest("GET", "/news-impact/9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown article, got %d", w.Code)
	}
}

func postContactForm(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func baseContactForm() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Looking forward to the trade fair."},
	}
}

func TestSubmitContact_StoresInquiryAndRedirects(t *testing.T) {
	r, gdb := setupContactTestRouter(t)

	form := baseContactForm()
	form.Set("form_timestamp", fmt.Sprintf("%d", time.Now().UnixMilli()-5000))

	w := postContactForm(t, r, form)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/contact#contact-status" {
		t.Fatalf("unexpected redirect target %q", loc)
	}

	var inquiries []db.Inquiry
	if err := gdb.Find(&inquiries).Error; err != nil {
		t.Fatalf("load inquiries: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected one stored inquiry, got %d", len(inquiries))
	}
	if inquiries[0].Status != db.InquiryStatusNew {
		t.Fatalf("expected status New, got %q", inquiries[0].Status)
	}
}

func TestSubmitContact_HoneypotLooksLikeSuccess(t *testing.T) {
	r, gdb := setupContactTestRouter(t)

	form := baseContactForm()
	form.Set("website_field", "http://spam.example")
	form.Set("form_timestamp", fmt.Sprintf("%d", time.Now().UnixMilli()-5000))

	w := postContactForm(t, r, form)
	if w.Code != http.StatusFound {
		t.Fatalf("honeypot response must match success shape, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/contact#contact-status" {
		t.Fatalf("unexpected redirect target %q", loc)
	}

	var count int64
	gdb.Model(&db.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("honeypot submission must write nothing, found %d rows", count)
	}
}

func TestSubmitContact_TooFastRejected(t *testing.T) {
	r, gdb := setupContactTestRouter(t)

	form := baseContactForm()
	form.Set("form_timestamp", fmt.Sprintf("%d", time.Now().UnixMilli()))

	w := postContactForm(t, r, form)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	var count int64
	gdb.Model(&db.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("too-fast submission must write nothing, found %d rows", count)
	}
}

func TestSubmitContact_MalformedTimestampFailsOpen(t *testing.T) {
	r, gdb := setupContactTestRouter(t)

	form := baseContactForm()
	form.Set("form_timestamp", "not-a-number")

	w := postContactForm(t, r, form)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	var count int64
	gdb.Model(&db.Inquiry{}).Count(&count)
	if count != 1 {
		t.Fatalf("malformed timestamp must fail open, found %d rows", count)
	}
}
