package main

import (
	"log"

	"github.com/Christianboat/Eidikoswebapp/internal/config"
	"github.com/Christianboat/Eidikoswebapp/internal/db"
	"github.com/Christianboat/Eidikoswebapp/internal/handler"
	"github.com/Christianboat/Eidikoswebapp/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 仅在本地开发时存在，缺失不视为错误
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 管理员账号通过环境变量引导，存在时跳过
	if err := db.EnsureUser(gdb, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath)
	r := router.SetupRouter(api, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
