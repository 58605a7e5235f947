package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// pageForm binds the admin page edit form.
type pageForm struct {
	Slug            string `form:"slug"`
	HeroTitle       string `form:"hero_title"`
	HeroSubtitle    string `form:"hero_subtitle"`
	HeroDescription string `form:"hero_description"`
	MetaDescription string `form:"meta_description"`
	IsComingSoon    bool   `form:"is_coming_soon"`
}

func (f pageForm) toInput() service.PageInput {
	return service.PageInput{
		Slug:            f.Slug,
		HeroTitle:       f.HeroTitle,
		HeroSubtitle:    f.HeroSubtitle,
		HeroDescription: f.HeroDescription,
		MetaDescription: f.MetaDescription,
		IsComingSoon:    f.IsComingSoon,
	}
}

// sectionForm binds the admin section form.
type sectionForm struct {
	SectionKey string `form:"section_key"`
	Title      string `form:"title"`
	Content    string `form:"content"`
	VideoURL   string `form:"video_url"`
	SortOrder  int    `form:"order"`
}

// itemForm binds the admin content item form.
type itemForm struct {
	Title     string `form:"title"`
	Subtitle  string `form:"subtitle"`
	Content   string `form:"content"`
	Icon      string `form:"icon"`
	LinkURL   string `form:"link_url"`
	LinkText  string `form:"link_text"`
	SortOrder int    `form:"order"`
}

// ShowPageList 渲染页面列表。
func (a *API) ShowPageList(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load pages")
		return
	}
	a.renderHTML(c, http.StatusOK, "pages_list.html", gin.H{
		"title": "Pages",
		"pages": pages,
	})
}

// ShowPageEdit 渲染页面编辑表单及其区块列表。
func (a *API) ShowPageEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	page, err := a.pages.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	sections, _ := a.pages.SectionsOf(page.ID)

	a.renderHTML(c, http.StatusOK, "page_edit.html", gin.H{
		"title":    "Edit Page",
		"page":     page,
		"sections": sections,
	})
}

// UpdatePage 保存页面编辑。slug 冲突作为字段级错误回显。
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form pageForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "page_edit.html", gin.H{
			"title": "Edit Page",
			"error": "Invalid form input.",
			"form":  form,
		})
		return
	}

	if _, err := a.pages.Update(id, form.toInput()); err != nil {
		status := http.StatusInternalServerError
		message := "Failed to save page."
		if errors.Is(err, service.ErrSlugTaken) {
			status = http.StatusBadRequest
			message = "This slug is already in use. Please choose another."
		}
		page, _ := a.pages.Get(id)
		a.renderHTML(c, status, "page_edit.html", gin.H{
			"title": "Edit Page",
			"error": message,
			"page":  page,
			"form":  form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/pages")
}

// DeletePage 删除页面及其全部区块与条目。
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.pages.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete page")
		return
	}
	c.Redirect(http.StatusFound, "/admin/pages")
}

// ShowSectionList 渲染某页面的区块列表。
func (a *API) ShowSectionList(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	page, err := a.pages.Get(pageID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	sections, _ := a.pages.SectionsOf(page.ID)

	a.renderHTML(c, http.StatusOK, "sections_list.html", gin.H{
		"title":    "Sections",
		"page":     page,
		"sections": sections,
	})
}

// ShowSectionNew 渲染区块新建表单。
func (a *API) ShowSectionNew(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	page, err := a.pages.Get(pageID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "section_edit.html", gin.H{
		"title":  fmt.Sprintf("Add Section to %s", page.Slug),
		"legend": fmt.Sprintf("Add Section to %s", page.Slug),
		"page":   page,
	})
}

// CreateSection 新建区块，可附带图片上传。
func (a *API) CreateSection(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form sectionForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "section_edit.html", gin.H{
			"legend": "Add Section",
			"error":  "Invalid form input.",
			"form":   form,
		})
		return
	}

	input := service.SectionInput{
		SectionKey: form.SectionKey,
		Title:      form.Title,
		Content:    form.Content,
		VideoURL:   form.VideoURL,
		SortOrder:  form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "sections"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.pages.CreateSection(pageID, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "section_edit.html", gin.H{
			"legend": "Add Section",
			"error":  sectionErrorMessage(err),
			"form":   form,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/pages/%d/edit", pageID))
}

// ShowSectionEdit 渲染区块编辑表单。
func (a *API) ShowSectionEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	section, err := a.pages.GetSection(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "section_edit.html", gin.H{
		"title":   "Edit Section",
		"legend":  "Edit Section",
		"section": section,
	})
}

// UpdateSection 保存区块编辑。
func (a *API) UpdateSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	section, err := a.pages.GetSection(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form sectionForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "section_edit.html", gin.H{
			"legend":  "Edit Section",
			"error":   "Invalid form input.",
			"section": section,
		})
		return
	}

	input := service.SectionInput{
		SectionKey: form.SectionKey,
		Title:      form.Title,
		Content:    form.Content,
		VideoURL:   form.VideoURL,
		SortOrder:  form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "sections"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.pages.UpdateSection(id, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "section_edit.html", gin.H{
			"legend":  "Edit Section",
			"error":   sectionErrorMessage(err),
			"section": section,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/pages/%d/edit", section.PageID))
}

// DeleteSection 删除区块及其全部条目。
func (a *API) DeleteSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	section, err := a.pages.GetSection(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.pages.DeleteSection(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete section")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/pages/%d/edit", section.PageID))
}

// ShowItemList 渲染某区块的条目列表。
func (a *API) ShowItemList(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	section, err := a.pages.GetSection(sectionID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	items, _ := a.pages.ItemsOf(section.ID)

	a.renderHTML(c, http.StatusOK, "items_list.html", gin.H{
		"title":   "Items",
		"section": section,
		"items":   items,
	})
}

// ShowItemNew 渲染条目新建表单。
func (a *API) ShowItemNew(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	section, err := a.pages.GetSection(sectionID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "item_edit.html", gin.H{
		"legend":  fmt.Sprintf("Add Item to %s", section.SectionKey),
		"section": section,
	})
}

// CreateItem 新建条目。
func (a *API) CreateItem(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "item_edit.html", gin.H{
			"legend": "Add Item",
			"error":  "Invalid form input.",
		})
		return
	}

	input := itemInputFromForm(form)
	if filename, ok := a.saveFormImage(c, "image_file", "items"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.pages.CreateItem(sectionID, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "item_edit.html", gin.H{
			"legend": "Add Item",
			"error":  "Failed to save item.",
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/sections/%d/items", sectionID))
}

// ShowItemEdit 渲染条目编辑表单。
func (a *API) ShowItemEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	item, err := a.pages.GetItem(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "item_edit.html", gin.H{
		"legend": "Edit Item",
		"item":   item,
	})
}

// UpdateItem 保存条目编辑。
func (a *API) UpdateItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	item, err := a.pages.GetItem(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "item_edit.html", gin.H{
			"legend": "Edit Item",
			"error":  "Invalid form input.",
			"item":   item,
		})
		return
	}

	input := itemInputFromForm(form)
	if filename, ok := a.saveFormImage(c, "image_file", "items"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.pages.UpdateItem(id, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "item_edit.html", gin.H{
			"legend": "Edit Item",
			"error":  "Failed to save item.",
			"item":   item,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/sections/%d/items", item.SectionID))
}

// DeleteItem 删除条目。
func (a *API) DeleteItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	item, err := a.pages.GetItem(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.pages.DeleteItem(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/sections/%d/items", item.SectionID))
}

func itemInputFromForm(form itemForm) service.ContentItemInput {
	return service.ContentItemInput{
		Title:     form.Title,
		Subtitle:  form.Subtitle,
		Content:   form.Content,
		Icon:      form.Icon,
		LinkURL:   form.LinkURL,
		LinkText:  form.LinkText,
		SortOrder: form.SortOrder,
	}
}

func sectionErrorMessage(err error) string {
	if errors.Is(err, service.ErrSectionKeyMissing) {
		return "Section key is required."
	}
	return "Failed to save section."
}

// saveFormImage 保存可选的表单图片字段；未上传时返回 false，不视为错误。
func (a *API) saveFormImage(c *gin.Context, field, folder string) (string, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", false
	}
	filename, err := a.media.SaveUpload(file, folder)
	if err != nil {
		return "", false
	}
	return filename, true
}
