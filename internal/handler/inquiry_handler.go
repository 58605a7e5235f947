package handler

import (
	"errors"
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// inquiryTypeForm binds the admin inquiry type form.
type inquiryTypeForm struct {
	Name      string `form:"name"`
	Value     string `form:"value"`
	SortOrder int    `form:"order"`
}

// ShowInquiryList 渲染咨询列表，最新在前。
func (a *API) ShowInquiryList(c *gin.Context) {
	inquiries, err := a.inquiries.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load inquiries")
		return
	}
	types, _ := a.inquiries.ListTypes()
	typeNames := make(map[uint]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}

	a.renderHTML(c, http.StatusOK, "inquiries_list.html", gin.H{
		"title":     "Inquiries",
		"inquiries": inquiries,
		"typeNames": typeNames,
	})
}

// ShowInquiry 渲染单条咨询详情。
func (a *API) ShowInquiry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	inquiry, err := a.inquiries.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}

	typeName := ""
	if inquiry.InquiryTypeID != nil {
		if inquiryType, err := a.inquiries.GetType(*inquiry.InquiryTypeID); err == nil {
			typeName = inquiryType.Name
		}
	}

	a.renderHTML(c, http.StatusOK, "inquiry_detail.html", gin.H{
		"title":    "Inquiry",
		"inquiry":  inquiry,
		"typeName": typeName,
	})
}

// UpdateInquiryStatus 更新咨询状态，非法状态值直接报错而不动记录。
func (a *API) UpdateInquiryStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	status := c.PostForm("status")
	if _, err := a.inquiries.UpdateStatus(id, status); err != nil {
		if errors.Is(err, service.ErrInquiryStatusInvalid) {
			respondError(c, http.StatusBadRequest, "invalid inquiry status")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update inquiry")
		return
	}

	c.Redirect(http.StatusFound, "/admin/inquiries")
}

// DeleteInquiry 删除咨询。
func (a *API) DeleteInquiry(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.inquiries.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete inquiry")
		return
	}
	c.Redirect(http.StatusFound, "/admin/inquiries")
}

// ShowInquiryTypeList 渲染咨询类型列表。
func (a *API) ShowInquiryTypeList(c *gin.Context) {
	types, err := a.inquiries.ListTypes()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load inquiry types")
		return
	}
	a.renderHTML(c, http.StatusOK, "inquiry_types_list.html", gin.H{
		"title": "Inquiry Types",
		"types": types,
	})
}

// CreateInquiryType 新建咨询类型。
func (a *API) CreateInquiryType(c *gin.Context) {
	var form inquiryTypeForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.InquiryTypeInput{
		Name:      form.Name,
		Value:     form.Value,
		SortOrder: form.SortOrder,
	}
	if _, err := a.inquiries.CreateType(input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save inquiry type")
		return
	}

	c.Redirect(http.StatusFound, "/admin/inquiry-types")
}

// UpdateInquiryType 保存咨询类型编辑。
func (a *API) UpdateInquiryType(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form inquiryTypeForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.InquiryTypeInput{
		Name:      form.Name,
		Value:     form.Value,
		SortOrder: form.SortOrder,
	}
	if _, err := a.inquiries.UpdateType(id, input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save inquiry type")
		return
	}

	c.Redirect(http.StatusFound, "/admin/inquiry-types")
}

// DeleteInquiryType 删除咨询类型。已关联该类型的咨询保留，链接悬空由
// 列表页按空类型名展示。
func (a *API) DeleteInquiryType(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.inquiries.DeleteType(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete inquiry type")
		return
	}
	c.Redirect(http.StatusFound, "/admin/inquiry-types")
}
