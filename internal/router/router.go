package router

import (
	"html/template"
	"strings"

	"github.com/Christianboat/Eidikoswebapp/internal/config"
	"github.com/Christianboat/Eidikoswebapp/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("eidikos_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"splitLines": func(s string) []string {
			var lines []string
			for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
				if trimmed := strings.TrimSpace(line); trimmed != "" {
					lines = append(lines, trimmed)
				}
			}
			return lines
		},
		"uploadURL": func(folder, filename string) string {
			if filename == "" {
				return ""
			}
			return cfg.UploadURLPath + "/" + folder + "/" + filename
		},
	})
	r.LoadHTMLGlob("web/templates/**/*.html")

	// 静态文件服务
	r.Static("/static", "./web/static")

	// 公开站点路由
	r.GET("/", api.Index)
	r.GET("/about", api.About)
	r.GET("/programs", api.Programs)
	r.GET("/programs/:slug", api.ProgramDetail)
	r.GET("/program/:slug", api.ProgramDetail)
	r.GET("/digital", api.Digital)
	r.GET("/partnerships", api.Partnerships)
	r.GET("/join", api.Join)
	r.GET("/gallery", api.Gallery)
	r.GET("/news-impact", api.NewsImpact)
	r.GET("/news-impact/:id", api.NewsDetail)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	r.NoRoute(api.NotFound)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)

			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/:id/edit", api.ShowPageEdit)
			auth.POST("/pages/:id/edit", api.UpdatePage)
			auth.POST("/pages/:id/delete", api.DeletePage)
			auth.GET("/pages/:id/sections", api.ShowSectionList)
			auth.GET("/pages/:id/sections/new", api.ShowSectionNew)
			auth.POST("/pages/:id/sections/new", api.CreateSection)
			auth.GET("/sections/:id/edit", api.ShowSectionEdit)
			auth.POST("/sections/:id/edit", api.UpdateSection)
			auth.POST("/sections/:id/delete", api.DeleteSection)
			auth.GET("/sections/:id/items", api.ShowItemList)
			auth.GET("/sections/:id/items/new", api.ShowItemNew)
			auth.POST("/sections/:id/items/new", api.CreateItem)
			auth.GET("/items/:id/edit", api.ShowItemEdit)
			auth.POST("/items/:id/edit", api.UpdateItem)
			auth.POST("/items/:id/delete", api.DeleteItem)

			auth.GET("/programs", api.ShowProgramList)
			auth.GET("/programs/new", api.ShowProgramNew)
			auth.POST("/programs/new", api.CreateProgram)
			auth.GET("/programs/:id/edit", api.ShowProgramEdit)
			auth.POST("/programs/:id/edit", api.UpdateProgram)
			auth.POST("/programs/:id/delete", api.DeleteProgram)
			auth.GET("/programs/:id/subcontents/new", api.ShowSubContentNew)
			auth.POST("/programs/:id/subcontents/new", api.CreateSubContent)
			auth.GET("/subcontents/:id/edit", api.ShowSubContentEdit)
			auth.POST("/subcontents/:id/edit", api.UpdateSubContent)
			auth.POST("/subcontents/:id/delete", api.DeleteSubContent)

			auth.GET("/partnerships", api.ShowPartnershipList)
			auth.GET("/partnerships/new", api.ShowPartnershipNew)
			auth.POST("/partnerships/new", api.CreatePartnership)
			auth.GET("/partnerships/:id/edit", api.ShowPartnershipEdit)
			auth.POST("/partnerships/:id/edit", api.UpdatePartnership)
			auth.POST("/partnerships/:id/delete", api.DeletePartnership)
			auth.GET("/partnerships/:id/tiers/new", api.ShowTierNew)
			auth.POST("/partnerships/:id/tiers/new", api.CreateTier)
			auth.GET("/tiers/:id/edit", api.ShowTierEdit)
			auth.POST("/tiers/:id/edit", api.UpdateTier)
			auth.POST("/tiers/:id/delete", api.DeleteTier)

			auth.GET("/gallery", api.ShowGalleryList)
			auth.GET("/gallery/new", api.ShowGalleryNew)
			auth.POST("/gallery/new", api.CreateGalleryItem)
			auth.GET("/gallery/:id/edit", api.ShowGalleryEdit)
			auth.POST("/gallery/:id/edit", api.UpdateGalleryItem)
			auth.POST("/gallery/:id/delete", api.DeleteGalleryItem)

			auth.GET("/inquiries", api.ShowInquiryList)
			auth.GET("/inquiries/:id", api.ShowInquiry)
			auth.POST("/inquiries/:id/status", api.UpdateInquiryStatus)
			auth.POST("/inquiries/:id/delete", api.DeleteInquiry)
			auth.GET("/inquiry-types", api.ShowInquiryTypeList)
			auth.POST("/inquiry-types/new", api.CreateInquiryType)
			auth.POST("/inquiry-types/:id/edit", api.UpdateInquiryType)
			auth.POST("/inquiry-types/:id/delete", api.DeleteInquiryType)

			auth.GET("/news", api.ShowNewsList)
			auth.GET("/news/new", api.ShowNewsNew)
			auth.POST("/news/new", api.CreateNews)
			auth.GET("/news/:id/edit", api.ShowNewsEdit)
			auth.POST("/news/:id/edit", api.UpdateNews)
			auth.POST("/news/:id/delete", api.DeleteNews)

			auth.GET("/team", api.ShowTeamList)
			auth.GET("/team/new", api.ShowTeamNew)
			auth.POST("/team/new", api.CreateTeamMember)
			auth.GET("/team/:id/edit", api.ShowTeamEdit)
			auth.POST("/team/:id/edit", api.UpdateTeamMember)
			auth.POST("/team/:id/delete", api.DeleteTeamMember)

			auth.GET("/testimonials", api.ShowTestimonialList)
			auth.POST("/testimonials/new", api.CreateTestimonial)
			auth.POST("/testimonials/:id/edit", api.UpdateTestimonial)
			auth.POST("/testimonials/:id/delete", api.DeleteTestimonial)

			auth.GET("/metrics", api.ShowMetricList)
			auth.POST("/metrics/new", api.CreateMetric)
			auth.POST("/metrics/:id/edit", api.UpdateMetric)
			auth.POST("/metrics/:id/delete", api.DeleteMetric)

			auth.GET("/contact-info", api.ShowContactInfoList)
			auth.POST("/contact-info/new", api.CreateContactInfo)
			auth.POST("/contact-info/:id/edit", api.UpdateContactInfo)
			auth.POST("/contact-info/:id/delete", api.DeleteContactInfo)

			auth.GET("/social", api.ShowSocialList)
			auth.POST("/social/new", api.CreateSocial)
			auth.POST("/social/:id/edit", api.UpdateSocial)
			auth.POST("/social/:id/delete", api.DeleteSocial)

			auth.GET("/sponsors", api.ShowSponsorList)
			auth.POST("/sponsors/new", api.CreateSponsor)
			auth.POST("/sponsors/:id/edit", api.UpdateSponsor)
			auth.POST("/sponsors/:id/delete", api.DeleteSponsor)

			auth.GET("/site-settings", api.ShowSiteSettings)
			auth.POST("/site-settings", api.UpdateSiteSettings)

			auth.POST("/upload/image", api.UploadImage)
		}
	}

	return r
}
