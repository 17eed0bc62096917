package repository

import (
	"fmt"

	"github.com/user/movielist/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB 初始化数据库连接（本地 SQLite 文件）
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 建表
	if err := db.AutoMigrate(&model.Movie{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB    *gorm.DB
	Movie *MovieRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:    db,
		Movie: NewMovieRepository(db),
	}
}
