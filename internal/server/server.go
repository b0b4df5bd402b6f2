// Package server HTTP 服务装配
package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/lkasym/neon-panda-arcade-dashboard/internal/api/v1"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/config"
	"github.com/lkasym/neon-panda-arcade-dashboard/internal/store"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	snap   *store.Snapshot
	v1     *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化 SQLite Store
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "neonpanda.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 启动时把库内数据装入内存快照，报表即刻可用
	snapshot := store.NewSnapshot()
	if ds, err := sqliteStore.LoadDataset(); err != nil {
		log.Printf("Failed to load dataset from database: %v", err)
	} else {
		snapshot.Replace(ds)
	}

	// 创建 V1 API 处理器
	v1Handler := v1.NewHandler(sqliteStore, snapshot, cfg)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		snap:   snapshot,
		v1:     v1Handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// V1 API 路由
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// 开发模式：未命中的路由代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Store 获取存储（用于测试与启动导入）
func (s *Server) Store() *store.Store {
	return s.store
}

// Snapshot 获取内存快照（用于测试与启动导入）
func (s *Server) Snapshot() *store.Snapshot {
	return s.snap
}
