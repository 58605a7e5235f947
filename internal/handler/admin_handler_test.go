package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAdminTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin-handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	r.POST("/admin/login", api.Login)
	auth := r.Group("/admin", AuthRequired())
	auth.GET("/dashboard", api.ShowDashboard)
	auth.POST("/upload/image", api.UploadImage)

	return r, gdb
}

func createAdminUser(t *testing.T, gdb *gorm.DB, username, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func loginSessionCookies(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected login redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Fatalf("unexpected login redirect target %q", loc)
	}
	return w.Result().Cookies()
}

func TestAuthRequired_RedirectsAnonymous(t *testing.T) {
	r, _ := setupAdminTestRouter(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestLogin_GrantsDashboardAccess(t *testing.T) {
	r, gdb := setupAdminTestRouter(t)
	createAdminUser(t, gdb, "admin", "correct horse")

	cookies := loginSessionCookies(t, r, "admin", "correct horse")

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected dashboard after login, got %d", w.Code)
	}
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	r, gdb := setupAdminTestRouter(t)
	createAdminUser(t, gdb, "admin", "correct horse")

	form := url.Values{"username": {"admin"}, "password": {"battery staple"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
}

func imageUploadRequest(t *testing.T, target string, contentType string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("fake-image-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage_ReturnsEditorPayload(t *testing.T) {
	r, gdb := setupAdminTestRouter(t)
	createAdminUser(t, gdb, "admin", "correct horse")
	cookies := loginSessionCookies(t, r, "admin", "correct horse")

	req := imageUploadRequest(t, "/admin/upload/image", "image/png")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Success int `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Success != 1 {
		t.Fatalf("expected success payload, got %s", w.Body.String())
	}
	if !strings.HasPrefix(payload.Data.URL, "/static/uploads/editor/") || !strings.HasSuffix(payload.Data.URL, ".png") {
		t.Fatalf("unexpected upload url %q", payload.Data.URL)
	}
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	r, gdb := setupAdminTestRouter(t)
	createAdminUser(t, gdb, "admin", "correct horse")
	cookies := loginSessionCookies(t, r, "admin", "correct horse")

	req := imageUploadRequest(t, "/admin/upload/image", "application/pdf")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image upload, got %d", w.Code)
	}
}
