package router

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/movielist/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 页面 ====================
	r.GET("/", h.Home)
	r.GET("/add", h.AddPage)
	r.POST("/add", h.AddSubmit)
	r.GET("/addid/:id", h.AddByID)
	r.POST("/addid/:id", h.AddByID)
	r.GET("/edit/:id", h.EditPage)
	r.POST("/edit/:id", h.EditSubmit)
	r.GET("/delete", h.Delete)

	// ==================== htmx API ====================
	api := r.Group("/api")
	{
		api.GET("/movies", h.APIMovies)
	}
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局和局部模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"truncate": func(s string, n int) string {
			runes := []rune(s)
			if len(runes) <= n {
				return s
			}
			return string(runes[:n]) + "…"
		},
		"posterURL": func(path string) string {
			if path == "" {
				return ""
			}
			return "https://image.tmdb.org/t/p/w200" + path
		},
	}

	// 注册所有页面模板
	pages := []string{
		"home", "add", "select", "edit",
		"404", "error",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	return r
}
