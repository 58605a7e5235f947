package handler

import (
	"errors"
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// galleryForm binds the admin gallery item form. ProgramID 0 means the item
// is not linked to any program.
type galleryForm struct {
	Title     string `form:"title"`
	VideoURL  string `form:"video_url"`
	Category  string `form:"category"`
	ProgramID uint   `form:"program_id"`
	SortOrder int    `form:"order"`
}

// ShowGalleryList 渲染作品集后台列表。
func (a *API) ShowGalleryList(c *gin.Context) {
	items, err := a.gallery.ListAdmin()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	programs, _ := a.programs.List()

	a.renderHTML(c, http.StatusOK, "gallery_list.html", gin.H{
		"title":    "Gallery",
		"items":    items,
		"programs": programs,
	})
}

// ShowGalleryNew 渲染作品集条目新建表单。
func (a *API) ShowGalleryNew(c *gin.Context) {
	programs, _ := a.programs.List()
	a.renderHTML(c, http.StatusOK, "gallery_edit.html", gin.H{
		"legend":   "New Gallery Item",
		"programs": programs,
	})
}

// CreateGalleryItem 新建作品集条目：保存上传图片并记录其像素尺寸，
// 图片与视频至少填一项。
func (a *API) CreateGalleryItem(c *gin.Context) {
	var form galleryForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderGalleryError(c, "New Gallery Item", "Invalid form input.")
		return
	}

	input := service.GalleryInput{
		Title:     form.Title,
		VideoURL:  form.VideoURL,
		Category:  form.Category,
		ProgramID: form.ProgramID,
		SortOrder: form.SortOrder,
	}
	if file, err := c.FormFile("image_file"); err == nil {
		filename, err := a.media.SaveUpload(file, "gallery")
		if err != nil {
			a.renderGalleryError(c, "New Gallery Item", "Failed to store the uploaded image.")
			return
		}
		input.ImageFilename = filename
		input.ImageWidth, input.ImageHeight = service.ProbeImageSize(file)
	}

	if _, err := a.gallery.Create(input); err != nil {
		message := "Failed to save gallery item."
		if errors.Is(err, service.ErrGalleryMediaMissing) {
			message = "Please provide an image or a video link."
		}
		a.renderGalleryError(c, "New Gallery Item", message)
		return
	}

	c.Redirect(http.StatusFound, "/admin/gallery")
}

// ShowGalleryEdit 渲染作品集条目编辑表单。
func (a *API) ShowGalleryEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	item, err := a.gallery.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	programs, _ := a.programs.List()

	a.renderHTML(c, http.StatusOK, "gallery_edit.html", gin.H{
		"legend":   "Edit Gallery Item",
		"item":     item,
		"programs": programs,
	})
}

// UpdateGalleryItem 保存作品集条目编辑。program_id 传 0 表示解除项目关联。
func (a *API) UpdateGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form galleryForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderGalleryError(c, "Edit Gallery Item", "Invalid form input.")
		return
	}

	input := service.GalleryInput{
		Title:     form.Title,
		VideoURL:  form.VideoURL,
		Category:  form.Category,
		ProgramID: form.ProgramID,
		SortOrder: form.SortOrder,
	}
	if file, err := c.FormFile("image_file"); err == nil {
		filename, err := a.media.SaveUpload(file, "gallery")
		if err != nil {
			a.renderGalleryError(c, "Edit Gallery Item", "Failed to store the uploaded image.")
			return
		}
		input.ImageFilename = filename
		input.ImageWidth, input.ImageHeight = service.ProbeImageSize(file)
	}

	if _, err := a.gallery.Update(id, input); err != nil {
		a.renderGalleryError(c, "Edit Gallery Item", "Failed to save gallery item.")
		return
	}

	c.Redirect(http.StatusFound, "/admin/gallery")
}

// DeleteGalleryItem 删除作品集条目。
func (a *API) DeleteGalleryItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.gallery.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete gallery item")
		return
	}
	c.Redirect(http.StatusFound, "/admin/gallery")
}

func (a *API) renderGalleryError(c *gin.Context, legend, message string) {
	programs, _ := a.programs.List()
	a.renderHTML(c, http.StatusBadRequest, "gallery_edit.html", gin.H{
		"legend":   legend,
		"error":    message,
		"programs": programs,
	})
}
