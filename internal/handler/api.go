package handler

import (
	"github.com/Christianboat/Eidikoswebapp/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	pages        *service.PageService
	programs     *service.ProgramService
	partnerships *service.PartnershipService
	gallery      *service.GalleryService
	inquiries    *service.InquiryService
	news         *service.NewsService
	site         *service.SiteService
	people       *service.PeopleService
	media        *service.MediaService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:           gdb,
		pages:        service.NewPageService(gdb),
		programs:     service.NewProgramService(gdb),
		partnerships: service.NewPartnershipService(gdb),
		gallery:      service.NewGalleryService(gdb),
		inquiries:    service.NewInquiryService(gdb),
		news:         service.NewNewsService(gdb),
		site:         service.NewSiteService(gdb),
		people:       service.NewPeopleService(gdb),
		media:        service.NewMediaService(uploadDir, uploadURL),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

const siteGlobalsContextKey = "__site_globals"

// renderHTML 在渲染模板时附加所有页面共用的站点全局数据
// （站点设置、社交链接、主联系方式、赞助商）。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if cached, exists := c.Get(siteGlobalsContextKey); exists {
		if globals, ok := cached.(gin.H); ok {
			for key, value := range globals {
				if _, taken := payload[key]; !taken {
					payload[key] = value
				}
			}
			c.HTML(status, template, payload)
			return
		}
	}

	globals := gin.H{}
	if settings, err := a.site.Settings(); err == nil {
		globals["siteSettings"] = settings
	}
	if social, err := a.site.ListSocial(); err == nil {
		globals["socialMedia"] = social
	}
	if contact, err := a.site.PrimaryContact(); err == nil && contact != nil {
		globals["globalContactInfo"] = contact
	}
	if sponsors, err := a.site.ListSponsors(); err == nil {
		globals["sponsors"] = sponsors
	}
	c.Set(siteGlobalsContextKey, globals)

	for key, value := range globals {
		if _, taken := payload[key]; !taken {
			payload[key] = value
		}
	}
	c.HTML(status, template, payload)
}
