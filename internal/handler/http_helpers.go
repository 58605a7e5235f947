package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// notFoundPage 渲染公共 404 页面。
func (a *API) notFoundPage(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "404.html", gin.H{
		"title": "Page Not Found",
	})
}

// NotFound 是未匹配路由的兜底处理器。
func (a *API) NotFound(c *gin.Context) {
	a.notFoundPage(c)
}
