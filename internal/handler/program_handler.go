package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// programForm binds the admin program form.
type programForm struct {
	Name        string `form:"name"`
	Slug        string `form:"slug"`
	Excerpt     string `form:"excerpt"`
	Description string `form:"description"`
	Type        string `form:"type"`
	Category    string `form:"category"`
	Icon        string `form:"icon"`
	CTAURL      string `form:"cta_url"`
	CTAText     string `form:"cta_text"`
	IsFeatured  bool   `form:"is_featured"`
	SortOrder   int    `form:"order"`
}

func (f programForm) toInput() service.ProgramInput {
	return service.ProgramInput{
		Name:        f.Name,
		Slug:        f.Slug,
		Excerpt:     f.Excerpt,
		Description: f.Description,
		Type:        f.Type,
		Category:    f.Category,
		Icon:        f.Icon,
		CTAURL:      f.CTAURL,
		CTAText:     f.CTAText,
		IsFeatured:  f.IsFeatured,
		SortOrder:   f.SortOrder,
	}
}

// subContentForm binds the admin program subcontent form.
type subContentForm struct {
	Title     string `form:"title"`
	Content   string `form:"content"`
	SortOrder int    `form:"order"`
}

// ShowProgramList 渲染项目列表。
func (a *API) ShowProgramList(c *gin.Context) {
	programs, err := a.programs.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load programs")
		return
	}
	a.renderHTML(c, http.StatusOK, "programs_list.html", gin.H{
		"title":    "Programs",
		"programs": programs,
	})
}

// ShowProgramNew 渲染项目新建表单。
func (a *API) ShowProgramNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "program_edit.html", gin.H{
		"legend":       "New Program",
		"programTypes": db.ProgramTypes,
	})
}

// CreateProgram 新建项目。slug 留空时由名称自动派生。
func (a *API) CreateProgram(c *gin.Context) {
	var form programForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "program_edit.html", gin.H{
			"legend":       "New Program",
			"programTypes": db.ProgramTypes,
			"error":        "Invalid form input.",
			"form":         form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "programs"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.programs.Create(input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "program_edit.html", gin.H{
			"legend":       "New Program",
			"programTypes": db.ProgramTypes,
			"error":        programErrorMessage(err),
			"form":         form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/programs")
}

// ShowProgramEdit 渲染项目编辑表单及其子内容列表。
func (a *API) ShowProgramEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	program, err := a.programs.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	subcontents, _ := a.programs.SubContentsOf(program.ID)

	a.renderHTML(c, http.StatusOK, "program_edit.html", gin.H{
		"legend":       "Edit Program",
		"programTypes": db.ProgramTypes,
		"program":      program,
		"subcontents":  subcontents,
	})
}

// UpdateProgram 保存项目编辑。
func (a *API) UpdateProgram(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form programForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "program_edit.html", gin.H{
			"legend":       "Edit Program",
			"programTypes": db.ProgramTypes,
			"error":        "Invalid form input.",
			"form":         form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "programs"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.programs.Update(id, input); err != nil {
		program, _ := a.programs.Get(id)
		a.renderHTML(c, http.StatusBadRequest, "program_edit.html", gin.H{
			"legend":       "Edit Program",
			"programTypes": db.ProgramTypes,
			"error":        programErrorMessage(err),
			"program":      program,
			"form":         form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/programs")
}

// DeleteProgram 删除项目及其子内容与关联作品集条目。
func (a *API) DeleteProgram(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.programs.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete program")
		return
	}
	c.Redirect(http.StatusFound, "/admin/programs")
}

// ShowSubContentNew 渲染子内容新建表单。
func (a *API) ShowSubContentNew(c *gin.Context) {
	programID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	program, err := a.programs.Get(programID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "subcontent_edit.html", gin.H{
		"legend":  fmt.Sprintf("Add Content to %s", program.Name),
		"program": program,
	})
}

// CreateSubContent 新建子内容。
func (a *API) CreateSubContent(c *gin.Context) {
	programID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form subContentForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "subcontent_edit.html", gin.H{
			"legend": "Add Content",
			"error":  "Invalid form input.",
		})
		return
	}

	input := service.SubContentInput{
		Title:     form.Title,
		Content:   form.Content,
		SortOrder: form.SortOrder,
	}
	if _, err := a.programs.CreateSubContent(programID, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "subcontent_edit.html", gin.H{
			"legend": "Add Content",
			"error":  "Content is required.",
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/programs/%d/edit", programID))
}

// ShowSubContentEdit 渲染子内容编辑表单。
func (a *API) ShowSubContentEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	subcontent, err := a.programs.GetSubContent(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "subcontent_edit.html", gin.H{
		"legend":     "Edit Content",
		"subcontent": subcontent,
	})
}

// UpdateSubContent 保存子内容编辑。
func (a *API) UpdateSubContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	subcontent, err := a.programs.GetSubContent(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form subContentForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "subcontent_edit.html", gin.H{
			"legend":     "Edit Content",
			"error":      "Invalid form input.",
			"subcontent": subcontent,
		})
		return
	}

	input := service.SubContentInput{
		Title:     form.Title,
		Content:   form.Content,
		SortOrder: form.SortOrder,
	}
	if _, err := a.programs.UpdateSubContent(id, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "subcontent_edit.html", gin.H{
			"legend":     "Edit Content",
			"error":      "Content is required.",
			"subcontent": subcontent,
		})
		return
	}

	redirect := "/admin/programs"
	if subcontent.ProgramID != nil {
		redirect = fmt.Sprintf("/admin/programs/%d/edit", *subcontent.ProgramID)
	}
	c.Redirect(http.StatusFound, redirect)
}

// DeleteSubContent 删除子内容。
func (a *API) DeleteSubContent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	subcontent, err := a.programs.GetSubContent(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.programs.DeleteSubContent(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete content")
		return
	}

	redirect := "/admin/programs"
	if subcontent.ProgramID != nil {
		redirect = fmt.Sprintf("/admin/programs/%d/edit", *subcontent.ProgramID)
	}
	c.Redirect(http.StatusFound, redirect)
}

func programErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrSlugTaken):
		return "This slug is already in use. Please choose another."
	case errors.Is(err, service.ErrProgramNameMissing):
		return "Program name is required."
	case errors.Is(err, service.ErrProgramTypeInvalid):
		return "Please choose a valid program type."
	}
	return "Failed to save program."
}
