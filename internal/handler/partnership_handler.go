package handler

import (
	"fmt"
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// partnershipForm binds the admin partnership form.
type partnershipForm struct {
	Type        string `form:"type"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Benefits    string `form:"benefits"`
	LogoURL     string `form:"logo_url"`
	SortOrder   int    `form:"order"`
}

func (f partnershipForm) toInput() service.PartnershipInput {
	return service.PartnershipInput{
		Type:        f.Type,
		Title:       f.Title,
		Description: f.Description,
		Benefits:    f.Benefits,
		LogoURL:     f.LogoURL,
		SortOrder:   f.SortOrder,
	}
}

// tierForm binds the admin sponsorship tier form.
type tierForm struct {
	TierName  string `form:"tier_name"`
	Benefits  string `form:"benefits"`
	SortOrder int    `form:"order"`
}

// ShowPartnershipList 渲染合作列表。
func (a *API) ShowPartnershipList(c *gin.Context) {
	partnerships, err := a.partnerships.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load partnerships")
		return
	}
	a.renderHTML(c, http.StatusOK, "partnerships_list.html", gin.H{
		"title":        "Partnerships",
		"partnerships": partnerships,
	})
}

// ShowPartnershipNew 渲染合作新建表单。
func (a *API) ShowPartnershipNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "partnership_edit.html", gin.H{
		"legend": "New Partnership",
	})
}

// CreatePartnership 新建合作。
func (a *API) CreatePartnership(c *gin.Context) {
	var form partnershipForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "partnership_edit.html", gin.H{
			"legend": "New Partnership",
			"error":  "Invalid form input.",
			"form":   form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "partnerships"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.partnerships.Create(input); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "partnership_edit.html", gin.H{
			"legend": "New Partnership",
			"error":  "Failed to save partnership.",
			"form":   form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/partnerships")
}

// ShowPartnershipEdit 渲染合作编辑表单及其赞助等级列表。
func (a *API) ShowPartnershipEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	partnership, err := a.partnerships.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	tiers, _ := a.partnerships.TiersOf(partnership.ID)

	a.renderHTML(c, http.StatusOK, "partnership_edit.html", gin.H{
		"legend":      "Edit Partnership",
		"partnership": partnership,
		"tiers":       tiers,
	})
}

// UpdatePartnership 保存合作编辑。
func (a *API) UpdatePartnership(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form partnershipForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "partnership_edit.html", gin.H{
			"legend": "Edit Partnership",
			"error":  "Invalid form input.",
			"form":   form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "partnerships"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.partnerships.Update(id, input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save partnership")
		return
	}

	c.Redirect(http.StatusFound, "/admin/partnerships")
}

// DeletePartnership 删除合作。赞助等级有意保留，见 PartnershipService.Delete。
func (a *API) DeletePartnership(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.partnerships.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete partnership")
		return
	}
	c.Redirect(http.StatusFound, "/admin/partnerships")
}

// ShowTierNew 渲染赞助等级新建表单。
func (a *API) ShowTierNew(c *gin.Context) {
	partnershipID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	partnership, err := a.partnerships.Get(partnershipID)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "tier_edit.html", gin.H{
		"legend":      fmt.Sprintf("Add Tier to %s", partnership.Title),
		"partnership": partnership,
	})
}

// CreateTier 新建赞助等级。
func (a *API) CreateTier(c *gin.Context) {
	partnershipID, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form tierForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "tier_edit.html", gin.H{
			"legend": "Add Tier",
			"error":  "Invalid form input.",
		})
		return
	}

	input := service.TierInput{
		TierName:  form.TierName,
		Benefits:  form.Benefits,
		SortOrder: form.SortOrder,
	}
	if _, err := a.partnerships.CreateTier(partnershipID, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "tier_edit.html", gin.H{
			"legend": "Add Tier",
			"error":  "Tier name is required.",
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/partnerships/%d/edit", partnershipID))
}

// ShowTierEdit 渲染赞助等级编辑表单。
func (a *API) ShowTierEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	tier, err := a.partnerships.GetTier(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "tier_edit.html", gin.H{
		"legend": "Edit Tier",
		"tier":   tier,
	})
}

// UpdateTier 保存赞助等级编辑。
func (a *API) UpdateTier(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	tier, err := a.partnerships.GetTier(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form tierForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "tier_edit.html", gin.H{
			"legend": "Edit Tier",
			"error":  "Invalid form input.",
			"tier":   tier,
		})
		return
	}

	input := service.TierInput{
		TierName:  form.TierName,
		Benefits:  form.Benefits,
		SortOrder: form.SortOrder,
	}
	if _, err := a.partnerships.UpdateTier(id, input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "tier_edit.html", gin.H{
			"legend": "Edit Tier",
			"error":  "Tier name is required.",
			"tier":   tier,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/partnerships/%d/edit", tier.PartnershipID))
}

// DeleteTier 删除赞助等级。
func (a *API) DeleteTier(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	tier, err := a.partnerships.GetTier(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.partnerships.DeleteTier(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete tier")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/admin/partnerships/%d/edit", tier.PartnershipID))
}
