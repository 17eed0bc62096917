package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/movielist/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *MovieRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// :memory: 下每个连接是独立的库，收紧为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Movie{}))
	return NewMovieRepository(db)
}

func sampleMovie(title string) *model.Movie {
	return &model.Movie{
		Title:       title,
		Year:        2010,
		Description: "A thief who steals corporate secrets through dream-sharing technology.",
		Rating:      8.8,
		Ranking:     90,
		Review:      "",
		ImgURL:      "https://image.tmdb.org/t/p/w500/inception.jpg",
	}
}

func TestMovieRepository_Create(t *testing.T) {
	r := newTestRepo(t)

	m := sampleMovie("Inception")
	require.NoError(t, r.Create(m))
	require.NotZero(t, m.ID)
}

func TestMovieRepository_CreateDuplicateTitle(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.Create(sampleMovie("Inception")))

	err := r.Create(sampleMovie("Inception"))
	require.ErrorIs(t, err, model.ErrDuplicateTitle)

	// 失败的插入不应改变数据
	movies, err := r.ListOrderedByID()
	require.NoError(t, err)
	require.Len(t, movies, 1)
}

func TestMovieRepository_ListOrderedByID(t *testing.T) {
	r := newTestRepo(t)

	movies, err := r.ListOrderedByID()
	require.NoError(t, err)
	require.Empty(t, movies)

	require.NoError(t, r.Create(sampleMovie("Inception")))
	require.NoError(t, r.Create(sampleMovie("Interstellar")))

	movies, err = r.ListOrderedByID()
	require.NoError(t, err)
	require.Len(t, movies, 2)
	require.Less(t, movies[0].ID, movies[1].ID)
	require.Equal(t, "Inception", movies[0].Title)

	// 没有写入时重复读取应返回完全一致的结果
	again, err := r.ListOrderedByID()
	require.NoError(t, err)
	require.Equal(t, movies, again)
}

func TestMovieRepository_FindByID(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.FindByID(42)
	require.ErrorIs(t, err, model.ErrMovieNotFound)

	m := sampleMovie("Inception")
	require.NoError(t, r.Create(m))

	got, err := r.FindByID(m.ID)
	require.NoError(t, err)
	require.Equal(t, m.Title, got.Title)
	require.Equal(t, m.Year, got.Year)
}

func TestMovieRepository_UpdateRatingAndReview(t *testing.T) {
	r := newTestRepo(t)

	m := sampleMovie("Inception")
	require.NoError(t, r.Create(m))
	before, err := r.FindByID(m.ID)
	require.NoError(t, err)

	require.NoError(t, r.UpdateRatingAndReview(m.ID, 8.5, "Great"))

	after, err := r.FindByID(m.ID)
	require.NoError(t, err)
	require.Equal(t, 8.5, after.Rating)
	require.Equal(t, "Great", after.Review)

	// 其余字段必须保持原样
	require.Equal(t, before.Title, after.Title)
	require.Equal(t, before.Year, after.Year)
	require.Equal(t, before.Description, after.Description)
	require.Equal(t, before.Ranking, after.Ranking)
	require.Equal(t, before.ImgURL, after.ImgURL)
}

func TestMovieRepository_UpdateRatingAndReviewToEmpty(t *testing.T) {
	r := newTestRepo(t)

	m := sampleMovie("Inception")
	m.Review = "old review"
	require.NoError(t, r.Create(m))

	// 评论可以被清空
	require.NoError(t, r.UpdateRatingAndReview(m.ID, 7.0, ""))

	after, err := r.FindByID(m.ID)
	require.NoError(t, err)
	require.Equal(t, "", after.Review)
}

func TestMovieRepository_UpdateNotFound(t *testing.T) {
	r := newTestRepo(t)
	err := r.UpdateRatingAndReview(999999, 9.0, "nope")
	require.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieRepository_DeleteNotFound(t *testing.T) {
	r := newTestRepo(t)
	err := r.DeleteByID(999999)
	require.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestMovieRepository_Lifecycle(t *testing.T) {
	r := newTestRepo(t)

	movies, err := r.ListOrderedByID()
	require.NoError(t, err)
	require.Empty(t, movies)

	m := sampleMovie("Inception")
	require.NoError(t, r.Create(m))

	movies, err = r.ListOrderedByID()
	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, 1, movies[0].ID)

	require.NoError(t, r.DeleteByID(1))

	movies, err = r.ListOrderedByID()
	require.NoError(t, err)
	require.Empty(t, movies)
}
