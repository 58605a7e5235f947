package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将 Markdown 渲染为净化后的 HTML。
func renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

// sanitizeHTML 净化后台录入的富文本内容。
func sanitizeHTML(source string) template.HTML {
	return template.HTML(sanitizer.Sanitize(source))
}

// pageData 加载页面及其按 section_key 索引的区块。页面缺失不是错误：
// 模板对 nil page 自行降级渲染。
func (a *API) pageData(slug string) (*db.Page, map[string]db.Section) {
	page, err := a.pages.GetBySlug(slug)
	if err != nil {
		return nil, map[string]db.Section{}
	}
	sections, err := a.pages.SectionMap(page.ID)
	if err != nil {
		return page, map[string]db.Section{}
	}
	return page, sections
}

// Index 渲染首页，精选项目构成 highlight 区。
func (a *API) Index(c *gin.Context) {
	page, sections := a.pageData("home")
	featured, err := a.programs.Featured()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load programs")
		return
	}

	a.renderHTML(c, http.StatusOK, "index.html", gin.H{
		"page":     page,
		"sections": sections,
		"programs": featured,
	})
}

// About 渲染关于页。
func (a *API) About(c *gin.Context) {
	page, sections := a.pageData("about")
	team, _ := a.people.ListTeam()

	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"page":        page,
		"sections":    sections,
		"teamMembers": team,
	})
}

// Programs 渲染项目列表页。
func (a *API) Programs(c *gin.Context) {
	page, sections := a.pageData("programs")
	programs, err := a.programs.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load programs")
		return
	}

	a.renderHTML(c, http.StatusOK, "programs.html", gin.H{
		"page":     page,
		"sections": sections,
		"programs": programs,
	})
}

// ProgramDetail 渲染项目详情页，附带同类推荐与关联作品集。
func (a *API) ProgramDetail(c *gin.Context) {
	program, err := a.programs.GetBySlug(c.Param("slug"))
	if err != nil {
		a.notFoundPage(c)
		return
	}

	related, _ := a.programs.Related(program)
	subcontents, _ := a.programs.SubContentsOf(program.ID)
	galleryItems, _ := a.gallery.ListByProgram(program.ID)

	a.renderHTML(c, http.StatusOK, "program_detail.html", gin.H{
		"program":         program,
		"relatedPrograms": related,
		"subcontents":     subcontents,
		"galleryItems":    galleryItems,
		"programImageURL": a.media.ImageURL(program.ImageFilename, "programs"),
	})
}

// Digital 渲染数字化页面。
func (a *API) Digital(c *gin.Context) {
	page, sections := a.pageData("digital")
	a.renderHTML(c, http.StatusOK, "digital.html", gin.H{
		"page":     page,
		"sections": sections,
	})
}

// Partnerships 渲染合作页。
func (a *API) Partnerships(c *gin.Context) {
	page, sections := a.pageData("partnerships")
	partnerships, err := a.partnerships.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load partnerships")
		return
	}

	a.renderHTML(c, http.StatusOK, "partnerships.html", gin.H{
		"page":         page,
		"sections":     sections,
		"partnerships": partnerships,
	})
}

// Join 渲染加入我们页面。
func (a *API) Join(c *gin.Context) {
	page, sections := a.pageData("join")
	a.renderHTML(c, http.StatusOK, "join.html", gin.H{
		"page":     page,
		"sections": sections,
	})
}

// Gallery 渲染作品集页面，视频链接规整为可内嵌地址。
func (a *API) Gallery(c *gin.Context) {
	page, sections := a.pageData("gallery")
	items, err := a.gallery.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	programs, _ := a.gallery.ProgramsWithItems()

	a.renderHTML(c, http.StatusOK, "gallery.html", gin.H{
		"page":            page,
		"sections":        sections,
		"galleryItems":    items,
		"galleryPrograms": programs,
		"embedURLs":       galleryEmbedURLs(items),
	})
}

// galleryEmbedURLs 为带视频的条目预先解析嵌入地址，模板按条目 ID 取用。
func galleryEmbedURLs(items []db.GalleryItem) map[uint]string {
	embeds := make(map[uint]string)
	for _, item := range items {
		if item.VideoURL != "" {
			embeds[item.ID] = service.VideoEmbedURL(item.VideoURL)
		}
	}
	return embeds
}

// NewsImpact 渲染新闻与影响力页面。
func (a *API) NewsImpact(c *gin.Context) {
	page, sections := a.pageData("news-impact")
	articles, err := a.news.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load news")
		return
	}
	metrics, _ := a.people.ListMetrics()
	testimonials, _ := a.people.ListTestimonials()
	galleryItems, _ := a.gallery.Recent(6)
	galleryPrograms, _ := a.gallery.ProgramsWithItems()

	a.renderHTML(c, http.StatusOK, "news-impact.html", gin.H{
		"page":            page,
		"sections":        sections,
		"newsArticles":    articles,
		"impactMetrics":   metrics,
		"testimonials":    testimonials,
		"galleryItems":    galleryItems,
		"galleryPrograms": galleryPrograms,
	})
}

// NewsDetail 渲染文章详情，正文按 Markdown 渲染并净化。
func (a *API) NewsDetail(c *gin.Context) {
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

	body, err := renderMarkdown(article.Content)
	if err != nil {
		body = sanitizeHTML(article.Content)
	}
	recent, _ := a.news.Recent(article.ID, 3)
	categories, _ := a.news.Categories()

	a.renderHTML(c, http.StatusOK, "news_detail.html", gin.H{
		"article":        article,
		"articleBody":    body,
		"recentArticles": recent,
		"categories":     categories,
	})
}

// contactForm 描述公开联系表单的全部字段。website_field 为蜜罐，
// form_timestamp 为页面渲染时嵌入的毫秒时间戳。
type contactForm struct {
	Name          string `form:"name"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Organization  string `form:"organization"`
	InquiryType   string `form:"inquiry_type"`
	Message       string `form:"message"`
	WebsiteField  string `form:"website_field"`
	FormTimestamp string `form:"form_timestamp"`
}

// ShowContact 渲染联系页，支持通过 URL 预选咨询类型。
func (a *API) ShowContact(c *gin.Context) {
	page, sections := a.pageData("contact")
	contacts, _ := a.site.ListContacts()
	types, _ := a.inquiries.ListTypes()

	flash, flashClass := popFlash(c)

	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"page":            page,
		"sections":        sections,
		"contactInfo":     contacts,
		"inquiryTypes":    types,
		"selectedTypeID":  c.Query("type_id"),
		"selectedTypeVal": c.Query("type"),
		"selectedProgram": c.Query("program"),
		"formTimestamp":   time.Now().UnixMilli(),
		"flash":           flash,
		"flashClass":      flashClass,
	})
}

// SubmitContact 处理联系表单提交：蜜罐静默丢弃，过快提交给出警告，
// 其余进入咨询存储。
func (a *API) SubmitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Invalid form submission. Please try again.", "danger")
		c.Redirect(http.StatusFound, "/contact#contact-status")
		return
	}

	// 客户端时间戳缺失或非法按 0 处理，使校验放行
	clientMs, _ := strconv.ParseInt(form.FormTimestamp, 10, 64)
	serverMs := time.Now().UnixMilli()

	result, err := a.inquiries.Submit(service.InquirySubmission{
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		Organization:   form.Organization,
		Message:        form.Message,
		InquiryTypeRaw: form.InquiryType,
		Honeypot:       form.WebsiteField,
	}, clientMs, serverMs)

	switch {
	case errors.Is(err, service.ErrInquiryTooFast):
		setFlash(c, "Submission too fast. Please wait a moment and try again.", "warning")
	case errors.Is(err, service.ErrInquiryFieldsMissing):
		setFlash(c, "Please fill in your name and email address.", "danger")
	case err != nil:
		setFlash(c, "An error occurred while saving your inquiry. Please try again.", "danger")
	case result.Discarded:
		// 蜜罐命中：不落库，但响应与成功完全一致
	default:
		setFlash(c, fmt.Sprintf("Thank you, %s! Your inquiry about %q has been received.",
			result.Inquiry.Name, result.TypeName), "success")
	}

	c.Redirect(http.StatusFound, "/contact#contact-status")
}

// setFlash 将一次性提示消息写入会话。
func setFlash(c *gin.Context, message, class string) {
	session := sessions.Default(c)
	session.Set("flash", message)
	session.Set("flash_class", class)
	session.Save()
}

// popFlash 读取并清除会话中的一次性提示消息。
func popFlash(c *gin.Context) (string, string) {
	session := sessions.Default(c)
	message, _ := session.Get("flash").(string)
	class, _ := session.Get("flash_class").(string)
	if message != "" {
		session.Delete("flash")
		session.Delete("flash_class")
		session.Save()
	}
	return message, class
}
