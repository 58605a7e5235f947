package handler

import (
	"net/http"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
)

// newsForm binds the admin news article form. DatePublished uses the HTML
// date input format; a blank or malformed value leaves the date untouched.
type newsForm struct {
	Title            string `form:"title"`
	Content          string `form:"content"`
	Category         string `form:"category"`
	DatePublished    string `form:"date_published"`
	FeaturedImageURL string `form:"featured_image_url"`
	Excerpt          string `form:"excerpt"`
	SortOrder        int    `form:"order"`
}

func (f newsForm) toInput() service.NewsInput {
	input := service.NewsInput{
		Title:            f.Title,
		Content:          f.Content,
		Category:         f.Category,
		FeaturedImageURL: f.FeaturedImageURL,
		Excerpt:          f.Excerpt,
		SortOrder:        f.SortOrder,
	}
	if published, err := time.Parse("2006-01-02", f.DatePublished); err == nil {
		input.DatePublished = published
	}
	return input
}

// teamForm binds the admin team member form.
type teamForm struct {
	Name      string `form:"name"`
	Title     string `form:"title"`
	Bio       string `form:"bio"`
	PhotoURL  string `form:"photo_url"`
	SortOrder int    `form:"order"`
}

// testimonialForm binds the admin testimonial form.
type testimonialForm struct {
	AuthorName     string `form:"author_name"`
	AuthorRole     string `form:"author_role"`
	AuthorPhotoURL string `form:"author_photo_url"`
	Content        string `form:"content"`
	SortOrder      int    `form:"order"`
}

// metricForm binds the admin impact metric form.
type metricForm struct {
	Label     string `form:"label"`
	Value     string `form:"value"`
	Icon      string `form:"icon"`
	SortOrder int    `form:"order"`
}

// contactInfoForm binds the admin contact info form.
type contactInfoForm struct {
	InfoType           string `form:"info_type"`
	LocationDepartment string `form:"location_department"`
	Email              string `form:"email"`
	Phone              string `form:"phone"`
	Address            string `form:"address"`
	Hours              string `form:"hours"`
}

// socialForm binds the admin social media form.
type socialForm struct {
	Platform string `form:"platform"`
	URL      string `form:"url"`
}

// sponsorForm binds the admin sponsor form.
type sponsorForm struct {
	Name      string `form:"name"`
	SortOrder int    `form:"order"`
}

// siteSettingsForm binds the admin site settings form.
type siteSettingsForm struct {
	SiteName          string `form:"site_name"`
	FooterDescription string `form:"footer_description"`
	CopyrightText     string `form:"copyright_text"`
}

// ShowNewsList 渲染文章后台列表。
func (a *API) ShowNewsList(c *gin.Context) {
	articles, err := a.news.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load news")
		return
	}
	a.renderHTML(c, http.StatusOK, "news_list.html", gin.H{
		"title":    "News",
		"articles": articles,
	})
}

// ShowNewsNew 渲染文章新建表单。
func (a *API) ShowNewsNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "news_edit.html", gin.H{
		"legend": "New Article",
	})
}

// CreateNews 新建文章，发布日期留空默认当前时间。
func (a *API) CreateNews(c *gin.Context) {
	var form newsForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "news_edit.html", gin.H{
			"legend": "New Article",
			"error":  "Invalid form input.",
			"form":   form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "news"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.news.Create(input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "news_edit.html", gin.H{
			"legend": "New Article",
			"error":  "Title is required.",
			"form":   form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/news")
}

// ShowNewsEdit 渲染文章编辑表单。
func (a *API) ShowNewsEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	article, err := a.news.Get(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "news_edit.html", gin.H{
		"legend":  "Edit Article",
		"article": article,
	})
}

// UpdateNews 保存文章编辑。
func (a *API) UpdateNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form newsForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "news_edit.html", gin.H{
			"legend": "Edit Article",
			"error":  "Invalid form input.",
			"form":   form,
		})
		return
	}

	input := form.toInput()
	if filename, ok := a.saveFormImage(c, "image_file", "news"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.news.Update(id, input); err != nil {
		article, _ := a.news.Get(id)
		a.renderHTML(c, http.StatusBadRequest, "news_edit.html", gin.H{
			"legend":  "Edit Article",
			"error":   "Title is required.",
			"article": article,
			"form":    form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/news")
}

// DeleteNews 删除文章。
func (a *API) DeleteNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.news.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete article")
		return
	}
	c.Redirect(http.StatusFound, "/admin/news")
}

// ShowTeamList 渲染团队成员列表。
func (a *API) ShowTeamList(c *gin.Context) {
	members, err := a.people.ListTeam()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load team")
		return
	}
	a.renderHTML(c, http.StatusOK, "team_list.html", gin.H{
		"title":   "Team",
		"members": members,
	})
}

// ShowTeamNew 渲染团队成员新建表单。
func (a *API) ShowTeamNew(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "team_edit.html", gin.H{
		"legend": "New Team Member",
	})
}

// CreateTeamMember 新建团队成员。
func (a *API) CreateTeamMember(c *gin.Context) {
	var form teamForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.TeamMemberInput{
		Name:      form.Name,
		Title:     form.Title,
		Bio:       form.Bio,
		PhotoURL:  form.PhotoURL,
		SortOrder: form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "team"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.people.CreateTeamMember(input); err != nil {
		a.renderHTML(c, http.StatusBadRequest, "team_edit.html", gin.H{
			"legend": "New Team Member",
			"error":  "Name is required.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/team")
}

// ShowTeamEdit 渲染团队成员编辑表单。
func (a *API) ShowTeamEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	member, err := a.people.GetTeamMember(id)
	if err != nil {
		a.notFoundPage(c)
		return
	}
	a.renderHTML(c, http.StatusOK, "team_edit.html", gin.H{
		"legend": "Edit Team Member",
		"member": member,
	})
}

// UpdateTeamMember 保存团队成员编辑。
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form teamForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.TeamMemberInput{
		Name:      form.Name,
		Title:     form.Title,
		Bio:       form.Bio,
		PhotoURL:  form.PhotoURL,
		SortOrder: form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "team"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.people.UpdateTeamMember(id, input); err != nil {
		member, _ := a.people.GetTeamMember(id)
		a.renderHTML(c, http.StatusBadRequest, "team_edit.html", gin.H{
			"legend": "Edit Team Member",
			"error":  "Name is required.",
			"member": member,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/team")
}

// DeleteTeamMember 删除团队成员。
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.people.DeleteTeamMember(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete team member")
		return
	}
	c.Redirect(http.StatusFound, "/admin/team")
}

// ShowTestimonialList 渲染推荐语列表。
func (a *API) ShowTestimonialList(c *gin.Context) {
	testimonials, err := a.people.ListTestimonials()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	a.renderHTML(c, http.StatusOK, "testimonials_list.html", gin.H{
		"title":        "Testimonials",
		"testimonials": testimonials,
	})
}

// CreateTestimonial 新建推荐语。
func (a *API) CreateTestimonial(c *gin.Context) {
	var form testimonialForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.TestimonialInput{
		AuthorName:     form.AuthorName,
		AuthorRole:     form.AuthorRole,
		AuthorPhotoURL: form.AuthorPhotoURL,
		Content:        form.Content,
		SortOrder:      form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "testimonials"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.people.CreateTestimonial(input); err != nil {
		respondError(c, http.StatusBadRequest, "testimonial content is required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/testimonials")
}

// UpdateTestimonial 保存推荐语编辑。
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form testimonialForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.TestimonialInput{
		AuthorName:     form.AuthorName,
		AuthorRole:     form.AuthorRole,
		AuthorPhotoURL: form.AuthorPhotoURL,
		Content:        form.Content,
		SortOrder:      form.SortOrder,
	}
	if filename, ok := a.saveFormImage(c, "image_file", "testimonials"); ok {
		input.ImageFilename = filename
	}

	if _, err := a.people.UpdateTestimonial(id, input); err != nil {
		respondError(c, http.StatusBadRequest, "testimonial content is required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/testimonials")
}

// DeleteTestimonial 删除推荐语。
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.people.DeleteTestimonial(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete testimonial")
		return
	}
	c.Redirect(http.StatusFound, "/admin/testimonials")
}

// ShowMetricList 渲染影响力指标列表。
func (a *API) ShowMetricList(c *gin.Context) {
	metrics, err := a.people.ListMetrics()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load metrics")
		return
	}
	a.renderHTML(c, http.StatusOK, "metrics_list.html", gin.H{
		"title":   "Impact Metrics",
		"metrics": metrics,
	})
}

// CreateMetric 新建影响力指标。
func (a *API) CreateMetric(c *gin.Context) {
	var form metricForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.MetricInput{
		Label:     form.Label,
		Value:     form.Value,
		Icon:      form.Icon,
		SortOrder: form.SortOrder,
	}
	if _, err := a.people.CreateMetric(input); err != nil {
		respondError(c, http.StatusBadRequest, "label and value are required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/metrics")
}

// UpdateMetric 保存影响力指标编辑。
func (a *API) UpdateMetric(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form metricForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.MetricInput{
		Label:     form.Label,
		Value:     form.Value,
		Icon:      form.Icon,
		SortOrder: form.SortOrder,
	}
	if _, err := a.people.UpdateMetric(id, input); err != nil {
		respondError(c, http.StatusBadRequest, "label and value are required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/metrics")
}

// DeleteMetric 删除影响力指标。
func (a *API) DeleteMetric(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.people.DeleteMetric(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete metric")
		return
	}
	c.Redirect(http.StatusFound, "/admin/metrics")
}

// ShowContactInfoList 渲染联系信息列表。
func (a *API) ShowContactInfoList(c *gin.Context) {
	contacts, err := a.site.ListContacts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load contact info")
		return
	}
	a.renderHTML(c, http.StatusOK, "contact_info_list.html", gin.H{
		"title":    "Contact Info",
		"contacts": contacts,
	})
}

// CreateContactInfo 新建联系信息。
func (a *API) CreateContactInfo(c *gin.Context) {
	var form contactInfoForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	if _, err := a.site.CreateContact(contactInputFromForm(form)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save contact info")
		return
	}

	c.Redirect(http.StatusFound, "/admin/contact-info")
}

// UpdateContactInfo 保存联系信息编辑。
func (a *API) UpdateContactInfo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form contactInfoForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	if _, err := a.site.UpdateContact(id, contactInputFromForm(form)); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save contact info")
		return
	}

	c.Redirect(http.StatusFound, "/admin/contact-info")
}

// DeleteContactInfo 删除联系信息。
func (a *API) DeleteContactInfo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.site.DeleteContact(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete contact info")
		return
	}
	c.Redirect(http.StatusFound, "/admin/contact-info")
}

// ShowSocialList 渲染社交链接列表。
func (a *API) ShowSocialList(c *gin.Context) {
	links, err := a.site.ListSocial()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load social media")
		return
	}
	a.renderHTML(c, http.StatusOK, "social_list.html", gin.H{
		"title": "Social Media",
		"links": links,
	})
}

// CreateSocial 新建社交链接。
func (a *API) CreateSocial(c *gin.Context) {
	var form socialForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.SocialMediaInput{Platform: form.Platform, URL: form.URL}
	if _, err := a.site.CreateSocial(input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save social media")
		return
	}

	c.Redirect(http.StatusFound, "/admin/social")
}

// UpdateSocial 保存社交链接编辑。
func (a *API) UpdateSocial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form socialForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.SocialMediaInput{Platform: form.Platform, URL: form.URL}
	if _, err := a.site.UpdateSocial(id, input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save social media")
		return
	}

	c.Redirect(http.StatusFound, "/admin/social")
}

// DeleteSocial 删除社交链接。
func (a *API) DeleteSocial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.site.DeleteSocial(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete social media")
		return
	}
	c.Redirect(http.StatusFound, "/admin/social")
}

// ShowSponsorList 渲染赞助商列表。
func (a *API) ShowSponsorList(c *gin.Context) {
	sponsors, err := a.site.ListSponsors()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load sponsors")
		return
	}
	a.renderHTML(c, http.StatusOK, "sponsors_list.html", gin.H{
		"title":       "Sponsors",
		"sponsorList": sponsors,
	})
}

// CreateSponsor 新建赞助商，可附带 logo 上传。
func (a *API) CreateSponsor(c *gin.Context) {
	var form sponsorForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.SponsorInput{Name: form.Name, SortOrder: form.SortOrder}
	if filename, ok := a.saveFormImage(c, "logo_file", "sponsors"); ok {
		input.LogoFilename = filename
	}

	if _, err := a.site.CreateSponsor(input); err != nil {
		respondError(c, http.StatusBadRequest, "sponsor name is required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/sponsors")
}

// UpdateSponsor 保存赞助商编辑。
func (a *API) UpdateSponsor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}

	var form sponsorForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.SponsorInput{Name: form.Name, SortOrder: form.SortOrder}
	if filename, ok := a.saveFormImage(c, "logo_file", "sponsors"); ok {
		input.LogoFilename = filename
	}

	if _, err := a.site.UpdateSponsor(id, input); err != nil {
		respondError(c, http.StatusBadRequest, "sponsor name is required")
		return
	}

	c.Redirect(http.StatusFound, "/admin/sponsors")
}

// DeleteSponsor 删除赞助商。
func (a *API) DeleteSponsor(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.notFoundPage(c)
		return
	}
	if err := a.site.DeleteSponsor(id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete sponsor")
		return
	}
	c.Redirect(http.StatusFound, "/admin/sponsors")
}

// ShowSiteSettings 渲染站点设置表单。
func (a *API) ShowSiteSettings(c *gin.Context) {
	settings, err := a.site.Settings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load site settings")
		return
	}
	a.renderHTML(c, http.StatusOK, "site_settings.html", gin.H{
		"title":    "Site Settings",
		"settings": settings,
	})
}

// UpdateSiteSettings 保存站点设置。
func (a *API) UpdateSiteSettings(c *gin.Context) {
	var form siteSettingsForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid form input")
		return
	}

	input := service.SiteSettingsInput{
		SiteName:          form.SiteName,
		FooterDescription: form.FooterDescription,
		CopyrightText:     form.CopyrightText,
	}
	if _, err := a.site.UpdateSettings(input); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save site settings")
		return
	}

	c.Redirect(http.StatusFound, "/admin/site-settings")
}

func contactInputFromForm(form contactInfoForm) service.ContactInfoInput {
	return service.ContactInfoInput{
		InfoType:           form.InfoType,
		LocationDepartment: form.LocationDepartment,
		Email:              form.Email,
		Phone:              form.Phone,
		Address:            form.Address,
		Hours:              form.Hours,
	}
}
