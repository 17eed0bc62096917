package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/movielist/internal/form"
	"github.com/user/movielist/internal/model"
)

// Home 影单首页，按 ID 升序展示全部电影
func (h *Handler) Home(c *gin.Context) {
	movies, err := h.Repos.Movie.ListOrderedByID()
	if err != nil {
		log.Printf("[Movie] 加载影单失败: %v", err)
		h.renderError(c, http.StatusInternalServerError, "加载影单失败，请稍后重试")
		return
	}

	c.HTML(http.StatusOK, "home.html", h.RenderData(c, gin.H{
		"Title":  h.Config.SiteName + " - 我的影单",
		"Movies": movies,
	}))
}

// AddPage 添加电影表单页
func (h *Handler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", h.RenderData(c, gin.H{
		"Title": "添加电影 - " + h.Config.SiteName,
		"Form":  &form.AddForm{},
	}))
}

// AddSubmit 提交标题并搜索 TMDB，渲染候选列表
func (h *Handler) AddSubmit(c *gin.Context) {
	var f form.AddForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(); !errs.Valid() {
		c.HTML(http.StatusOK, "add.html", h.RenderData(c, gin.H{
			"Title":  "添加电影 - " + h.Config.SiteName,
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	results, err := h.TMDB.SearchByTitle(f.Title)
	if err != nil {
		log.Printf("[TMDB] 搜索失败 (query: %s): %v", f.Title, err)
		h.renderError(c, http.StatusBadGateway, "无法连接电影数据库，请稍后重试")
		return
	}

	c.HTML(http.StatusOK, "select.html", h.RenderData(c, gin.H{
		"Title":   "选择电影 - " + h.Config.SiteName,
		"Keyword": f.Title,
		"Results": results,
	}))
}

// AddByID 根据 TMDB ID 拉取详情并入库，成功后跳回首页
func (h *Handler) AddByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	detail, err := h.TMDB.FetchDetailByID(id)
	if err != nil {
		log.Printf("[TMDB] 获取详情失败 (TMDB ID: %d): %v", id, err)
		h.renderError(c, http.StatusBadGateway, "无法获取电影详情，请稍后重试")
		return
	}

	movie := &model.Movie{
		Title:       detail.Title,
		Year:        detail.Year,
		Description: detail.Description,
		Rating:      detail.Rating,
		Ranking:     detail.Ranking,
		Review:      "",
		ImgURL:      detail.ImgURL,
	}
	if err := h.Repos.Movie.Create(movie); err != nil {
		if errors.Is(err, model.ErrDuplicateTitle) {
			h.renderError(c, http.StatusConflict, "影单里已经有《"+detail.Title+"》了")
			return
		}
		log.Printf("[Movie] 保存电影失败 (title: %s): %v", detail.Title, err)
		h.renderError(c, http.StatusInternalServerError, "保存失败，请稍后重试")
		return
	}

	h.flashAndRedirect(c, "《"+movie.Title+"》已加入影单")
}

// EditPage 修改评分/评论表单页，表单预填当前值
func (h *Handler) EditPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderNotFound(c)
			return
		}
		log.Printf("[Movie] 查询电影失败 (ID: %d): %v", id, err)
		h.renderError(c, http.StatusInternalServerError, "查询失败，请稍后重试")
		return
	}

	c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
		"Title": "修改评分 - " + h.Config.SiteName,
		"Movie": movie,
		"Form": &form.UpdateForm{
			NewRating: strconv.FormatFloat(movie.Rating, 'f', -1, 64),
			NewReview: movie.Review,
		},
	}))
}

// EditSubmit 校验表单并更新评分/评论，成功后跳回首页
func (h *Handler) EditSubmit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderNotFound(c)
			return
		}
		log.Printf("[Movie] 查询电影失败 (ID: %d): %v", id, err)
		h.renderError(c, http.StatusInternalServerError, "查询失败，请稍后重试")
		return
	}

	var f form.UpdateForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(); !errs.Valid() {
		c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
			"Title":  "修改评分 - " + h.Config.SiteName,
			"Movie":  movie,
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	if err := h.Repos.Movie.UpdateRatingAndReview(id, f.Rating(), f.NewReview); err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderNotFound(c)
			return
		}
		log.Printf("[Movie] 更新电影失败 (ID: %d): %v", id, err)
		h.renderError(c, http.StatusInternalServerError, "更新失败，请稍后重试")
		return
	}

	h.flashAndRedirect(c, "《"+movie.Title+"》已更新")
}

// Delete 根据查询参数 id 删除电影，ID 不存在时返回 404
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	if err := h.Repos.Movie.DeleteByID(id); err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			h.renderNotFound(c)
			return
		}
		log.Printf("[Movie] 删除电影失败 (ID: %d): %v", id, err)
		h.renderError(c, http.StatusInternalServerError, "删除失败，请稍后重试")
		return
	}

	h.flashAndRedirect(c, "已从影单移除")
}
