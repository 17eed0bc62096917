package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient TMDB API 专用 HTTP 客户端
type HTTPClient struct {
	httpClient *http.Client
	token      string
}

// NewHTTPClient 创建新的HTTP客户端，token 为 TMDB 读访问令牌
func NewHTTPClient(token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		token: token,
	}
}

// Get 发送带认证头的 GET 请求
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.httpClient.Do(req)
}

// GetJSON 发送GET请求并解析JSON响应，非 2xx 状态码视为失败
func (c *HTTPClient) GetJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("请求失败，状态码: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("解析JSON失败: %w", err)
	}
	return nil
}
