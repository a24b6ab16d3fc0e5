// Package cache 提供解析结果的缓存，支持内存、文件、Redis和PostgreSQL四种后端
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"pubrank-go/internal/model"
)

// CachedResult 缓存的解析结果
type CachedResult struct {
	Key       string            `json:"key"` // 归一化的研究者标识
	Result    *model.RankResult `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Cache 缓存接口
type Cache interface {
	Get(ctx context.Context, key string) (*CachedResult, error)
	Set(ctx context.Context, key string, result *model.RankResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NormalizeKey 把请求参数变成稳定的缓存键
func NormalizeKey(name, pid string) string {
	if pid != "" {
		return "pid:" + pid
	}
	return "name:" + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// FileCache 基于文件的缓存实现
type FileCache struct {
	dir string
	mu  sync.RWMutex
}

// NewFileCache 创建文件缓存
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) cacheFile(key string) string {
	// 键里的斜杠不能进文件名
	return filepath.Join(c.dir, strings.ReplaceAll(key, "/", "_")+".json")
}

// Get 获取缓存
func (c *FileCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.cacheFile(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // 缓存不存在
		}
		return nil, err
	}

	var result CachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	// 检查是否过期
	if time.Now().After(result.ExpiresAt) {
		go c.Delete(context.Background(), key)
		return nil, nil
	}

	return &result, nil
}

// Set 设置缓存
func (c *FileCache) Set(ctx context.Context, key string, result *model.RankResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := CachedResult{
		Key:       key,
		Result:    result,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	jsonData, err := json.MarshalIndent(cached, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.cacheFile(key), jsonData, 0644)
}

// Delete 删除缓存
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.cacheFile(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryCache 内存缓存实现（用于测试或单机部署）
type MemoryCache struct {
	data map[string]*CachedResult
	mu   sync.RWMutex
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]*CachedResult),
	}
}

// Get 获取缓存
func (c *MemoryCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.data[key]
	if !ok {
		return nil, nil
	}

	// 检查是否过期
	if time.Now().After(result.ExpiresAt) {
		go c.Delete(context.Background(), key)
		return nil, nil
	}

	return result, nil
}

// Set 设置缓存
func (c *MemoryCache) Set(ctx context.Context, key string, result *model.RankResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = &CachedResult{
		Key:       key,
		Result:    result,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete 删除缓存
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	return nil
}

// PostgresCache PostgreSQL缓存实现
type PostgresCache struct {
	db *sql.DB
}

// NewPostgresCache 创建PostgreSQL缓存
func NewPostgresCache(databaseURL string) (*PostgresCache, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCache{db: db}, nil
}

// Get 获取缓存
func (c *PostgresCache) Get(ctx context.Context, key string) (*CachedResult, error) {
	query := `
	SELECT cache_key, result, created_at, expires_at
	FROM rank_cache
	WHERE cache_key = $1 AND expires_at > NOW()
	`

	var result CachedResult
	var resultJSON []byte

	err := c.db.QueryRowContext(ctx, query, key).Scan(
		&result.Key,
		&resultJSON,
		&result.CreatedAt,
		&result.ExpiresAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil // 缓存不存在或已过期
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resultJSON, &result.Result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Set 设置缓存
func (c *PostgresCache) Set(ctx context.Context, key string, result *model.RankResult, ttl time.Duration) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(ttl)

	query := `
	INSERT INTO rank_cache (cache_key, result, created_at, expires_at)
	VALUES ($1, $2, NOW(), $3)
	ON CONFLICT (cache_key)
	DO UPDATE SET result = $2, created_at = NOW(), expires_at = $3
	`

	_, err = c.db.ExecContext(ctx, query, key, resultJSON, expiresAt)
	return err
}

// Delete 删除缓存
func (c *PostgresCache) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM rank_cache WHERE cache_key = $1`
	_, err := c.db.ExecContext(ctx, query, key)
	return err
}

// Close 关闭数据库连接
func (c *PostgresCache) Close() error {
	return c.db.Close()
}

// CleanExpired 清理过期缓存
func (c *PostgresCache) CleanExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM rank_cache WHERE expires_at < NOW()`
	result, err := c.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
