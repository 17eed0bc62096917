package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/user/movielist/internal/utils"
)

// APIMovies 影单 JSON 接口，顺序与首页一致
func (h *Handler) APIMovies(c *gin.Context) {
	movies, err := h.Repos.Movie.ListOrderedByID()
	if err != nil {
		log.Printf("[API] 加载影单失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, movies)
}
