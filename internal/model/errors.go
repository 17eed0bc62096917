package model

import "errors"

// 领域错误。仓库和服务返回类型化错误，由 Handler 决定映射成什么响应。
var (
	// ErrMovieNotFound 按 ID 查找/更新/删除时电影不存在
	ErrMovieNotFound = errors.New("movie not found")

	// ErrDuplicateTitle 插入的电影标题已存在
	ErrDuplicateTitle = errors.New("movie title already exists")
)
