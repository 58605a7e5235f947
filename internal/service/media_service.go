package service

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var (
	driveFilePattern = regexp.MustCompile(`drive\.google\.com/(?:file/d/|open\?id=)([-a-zA-Z0-9_]+)`)
	youtubeIDPattern = regexp.MustCompile(`(?:v=|/|embed/|shorts/)([0-9A-Za-z_-]{11})`)
)

// VideoEmbedURL 将用户填写的分享链接规整为可内嵌播放的地址。
// 支持 YouTube（watch、youtu.be、embed、shorts）与 Google Drive 两类链接；
// 无法识别的链接原样返回，空输入返回空串。
func VideoEmbedURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	if strings.Contains(raw, "drive.google.com") {
		if match := driveFilePattern.FindStringSubmatch(raw); match != nil {
			return "https://drive.google.com/file/d/" + match[1] + "/preview"
		}
	}

	if strings.Contains(raw, "youtube.com") || strings.Contains(raw, "youtu.be") {
		if match := youtubeIDPattern.FindStringSubmatch(raw); match != nil {
			return "https://www.youtube.com/embed/" + match[1]
		}
	}

	return raw
}

// MediaService stores uploaded assets under a local upload directory and
// maps stored filenames back to public URLs.
type MediaService struct {
	uploadDir     string
	uploadURLPath string
}

// NewMediaService creates a MediaService rooted at uploadDir. uploadURLPath
// is the public prefix the static file server exposes the directory under.
func NewMediaService(uploadDir, uploadURLPath string) *MediaService {
	return &MediaService{
		uploadDir:     uploadDir,
		uploadURLPath: strings.TrimSuffix(uploadURLPath, "/"),
	}
}

// SaveUpload writes the uploaded file into uploadDir/folder under a random
// hex name, preserving the original extension, and returns the filename.
// The 16 random bytes behind the name are the sole collision guard; no
// existence check is made before writing.
func (m *MediaService) SaveUpload(file *multipart.FileHeader, folder string) (string, error) {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	filename := token + filepath.Ext(file.Filename)

	dir := filepath.Join(m.uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}

// ImageURL returns the public URL for a stored filename, or "" when the
// filename is empty.
func (m *MediaService) ImageURL(filename, folder string) string {
	if strings.TrimSpace(filename) == "" {
		return ""
	}
	if folder == "" {
		return m.uploadURLPath + "/" + filename
	}
	return m.uploadURLPath + "/" + folder + "/" + filename
}

// ProbeImageSize 尽力解析上传图片的像素尺寸，解析失败时返回 0。
// 通过匿名导入注册了 jpeg/png/gif/webp 解码器。
func ProbeImageSize(file *multipart.FileHeader) (int, int) {
	src, err := file.Open()
	if err != nil {
		return 0, 0
	}
	defer src.Close()

	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
