package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/movielist/internal/config"
	"github.com/user/movielist/internal/repository"
	"github.com/user/movielist/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
	TMDB   *service.TMDBService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, tmdb *service.TMDBService) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
		TMDB:   tmdb,
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	// 基础数据
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"SiteUrl":  h.Config.SiteUrl,
		"Path":     c.Request.URL.Path,
	}

	// 取出一次性闪存消息
	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		session.Save()
		res["Flash"] = flashes[0]
	}

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// flashAndRedirect 写入一次性提示消息并跳回首页
func (h *Handler) flashAndRedirect(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// renderNotFound 渲染 404 页面
func (h *Handler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "电影未找到 - " + h.Config.SiteName,
	}))
}

// renderError 渲染错误提示页面
func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", h.RenderData(c, gin.H{
		"Title":   "出错了 - " + h.Config.SiteName,
		"Message": message,
	}))
}
