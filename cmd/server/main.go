package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"pubrank-go/config"
	"pubrank-go/internal/cache"
	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/handler"
	"pubrank-go/internal/service"
)

func main() {
	// 加载 .env 文件（如果存在）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// 创建缓存（按 PostgreSQL > Redis > 文件 > 内存 的顺序选择）
	store := buildCache(cfg)

	// 外部数据源
	bib := fetcher.NewDBLPFetcher(cfg.DBLPBaseURL)
	journals := fetcher.NewSJRFetcher(cfg.SJRBaseURL)

	// 解析服务
	rankService := service.NewRankService(bib, journals, store, cfg.CacheTTL)
	rankHandler := handler.NewRankHandler(rankService)

	// 设置路由
	mux := http.NewServeMux()
	mux.HandleFunc("/health", rankHandler.Health)
	mux.HandleFunc("/api/rank/sse", rankHandler.ResolveSSE)

	// CORS中间件
	corsHandler := corsMiddleware(mux)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal(err)
	}
}

func buildCache(cfg *config.Config) cache.Cache {
	if cfg.DatabaseURL != "" {
		pg, err := cache.NewPostgresCache(cfg.DatabaseURL)
		if err == nil {
			log.Println("Using PostgreSQL cache")
			return pg
		}
		log.Printf("Warning: Failed to connect to PostgreSQL: %v", err)
	}
	if cfg.RedisURL != "" {
		rd, err := cache.NewRedisCache(cfg.RedisURL)
		if err == nil {
			log.Println("Using Redis cache")
			return rd
		}
		log.Printf("Warning: Failed to connect to Redis: %v", err)
	}
	if cfg.CacheDir != "" {
		fc, err := cache.NewFileCache(cfg.CacheDir)
		if err == nil {
			log.Println("Using file cache")
			return fc
		}
		log.Printf("Warning: Failed to create file cache: %v", err)
	}
	log.Println("Using memory cache")
	return cache.NewMemoryCache()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
