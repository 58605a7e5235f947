package handler

import (
	"net/http"

	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password.",
		})
		return
	}

	if !user.CheckPassword(password) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password.",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Failed to save session.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	var pageCount, programCount, partnershipCount, teamCount, sponsorCount int64
	a.db.Model(&db.Page{}).Count(&pageCount)
	a.db.Model(&db.Program{}).Count(&programCount)
	a.db.Model(&db.Partnership{}).Count(&partnershipCount)
	a.db.Model(&db.TeamMember{}).Count(&teamCount)
	a.db.Model(&db.Sponsor{}).Count(&sponsorCount)

	newInquiries, _ := a.inquiries.CountByStatus(db.InquiryStatusNew)
	recentNews, _ := a.news.List()
	if len(recentNews) > 5 {
		recentNews = recentNews[:5]
	}

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":    "Dashboard",
		"username": username,
		"stats": gin.H{
			"pages":        pageCount,
			"programs":     programCount,
			"partnerships": partnershipCount,
			"team":         teamCount,
			"sponsors":     sponsorCount,
			"inquiries":    newInquiries,
		},
		"recentNews": recentNews,
	})
}

// AuthRequired 是后台路由的认证中间件，未登录的请求重定向到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
