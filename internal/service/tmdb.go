package service

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/user/movielist/internal/config"
	"github.com/user/movielist/internal/model"
	"github.com/user/movielist/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	defaultAPIBaseURL   = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p/w500"
)

// UpstreamError TMDB 调用失败（网络错误、非 2xx、响应缺字段）
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// TMDBService TMDB 元数据服务
type TMDBService struct {
	client       *utils.HTTPClient
	apiBaseURL   string
	imageBaseURL string
	group        singleflight.Group
}

// NewTMDBService 创建服务
func NewTMDBService(cfg *config.Config) *TMDBService {
	return &TMDBService{
		client:       utils.NewHTTPClient(cfg.TMDBToken, 30*time.Second),
		apiBaseURL:   defaultAPIBaseURL,
		imageBaseURL: defaultImageBaseURL,
	}
}

type tmdbSearchResponse struct {
	Results []model.SearchResult `json:"results"`
}

// SearchByTitle 按标题搜索电影，返回原始结果列表
func (s *TMDBService) SearchByTitle(query string) ([]model.SearchResult, error) {
	u := fmt.Sprintf("%s/search/movie?query=%s&language=en-US", s.apiBaseURL, url.QueryEscape(query))

	var result tmdbSearchResponse
	if err := s.client.GetJSON(u, &result); err != nil {
		return nil, &UpstreamError{Op: "search", Err: err}
	}
	return result.Results, nil
}

type tmdbDetailResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	PosterPath  string  `json:"poster_path"`
}

// FetchDetailByID 获取电影详情并映射为入库字段
func (s *TMDBService) FetchDetailByID(tmdbID int) (*model.MovieDetail, error) {
	// 同一个 ID 的并发请求只发一次
	val, err, _ := s.group.Do(strconv.Itoa(tmdbID), func() (interface{}, error) {
		return s.fetchDetail(tmdbID)
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.MovieDetail), nil
}

func (s *TMDBService) fetchDetail(tmdbID int) (*model.MovieDetail, error) {
	u := fmt.Sprintf("%s/movie/%d?language=en-US", s.apiBaseURL, tmdbID)

	var result tmdbDetailResponse
	if err := s.client.GetJSON(u, &result); err != nil {
		return nil, &UpstreamError{Op: "detail", Err: err}
	}

	if result.Title == "" {
		return nil, &UpstreamError{Op: "detail", Err: fmt.Errorf("响应缺少 title 字段 (TMDB ID: %d)", tmdbID)}
	}

	// 上映日期形如 2010-07-15，第一段就是年份
	year, err := strconv.Atoi(strings.Split(result.ReleaseDate, "-")[0])
	if err != nil {
		return nil, &UpstreamError{Op: "detail", Err: fmt.Errorf("无法解析上映日期 %q: %w", result.ReleaseDate, err)}
	}

	return &model.MovieDetail{
		Title:       result.Title,
		Year:        year,
		Description: result.Overview,
		Rating:      result.VoteAverage,
		Ranking:     int(math.Round(result.Popularity)),
		// poster_path 缺失时保留裸的基础 URL，与上游返回什么存什么保持一致
		ImgURL: s.imageBaseURL + result.PosterPath,
	}, nil
}
