package repository

import (
	"errors"
	"strings"

	"github.com/user/movielist/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create 新增电影，标题重复时返回 model.ErrDuplicateTitle，不写入任何数据
func (r *MovieRepository) Create(movie *model.Movie) error {
	var count int64
	if err := r.db.Model(&model.Movie{}).Where("title = ?", movie.Title).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return model.ErrDuplicateTitle
	}

	if err := r.db.Create(movie).Error; err != nil {
		// 预检查可能被并发写入绕过，唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// ListOrderedByID 按 ID 升序返回全部电影，没有记录时返回空切片
func (r *MovieRepository) ListOrderedByID() ([]model.Movie, error) {
	movies := make([]model.Movie, 0)
	if err := r.db.Order("id asc").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// UpdateRatingAndReview 只更新评分和评论两列，其余字段不动
func (r *MovieRepository) UpdateRatingAndReview(id int, rating float64, review string) error {
	res := r.db.Model(&model.Movie{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review": review})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

// DeleteByID 根据 ID 删除电影
func (r *MovieRepository) DeleteByID(id int) error {
	res := r.db.Delete(&model.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
