package config

import (
	"fmt"
	"os"
)

// Config 应用配置
type Config struct {
	Env          string
	AppSecret    string
	DatabasePath string
	TMDBToken    string
	Port         string
	SiteName     string
	SiteUrl      string
}

// Load 加载配置
func Load() *Config {
	appSecret := getEnv("APP_SECRET", "your-secret-key-change-in-production")

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	tmdbToken := getEnv("TMDB_READ_TOKEN", "")
	if tmdbToken == "" {
		fmt.Println("【警告】未设置 TMDB_READ_TOKEN，搜索和添加电影将不可用。")
	}

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		AppSecret:    appSecret,
		DatabasePath: getEnv("DATABASE_PATH", "movies.db"),
		TMDBToken:    tmdbToken,
		Port:         getEnv("PORT", "5005"),
		SiteName:     getEnv("SITE_NAME", "MovieList"),
		SiteUrl:      getEnv("SITE_URL", "http://localhost:5005"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
