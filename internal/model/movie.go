package model

// Movie 电影模型（影单条目）
type Movie struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"uniqueIndex;not null"`
	Year        int     `json:"year" gorm:"not null"`
	Description string  `json:"description" gorm:"not null"`
	Rating      float64 `json:"rating" gorm:"not null"`
	Ranking     int     `json:"ranking" gorm:"not null"` // TMDB 热度取整，不是名次
	Review      string  `json:"review" gorm:"not null"`
	ImgURL      string  `json:"img_url" gorm:"not null"`
}

// SearchResult TMDB 搜索结果（选择页展示用）
type SearchResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// MovieDetail TMDB 详情映射后的入库字段
type MovieDetail struct {
	Title       string
	Year        int
	Description string
	Rating      float64
	Ranking     int
	ImgURL      string
}
