// @title MindMate 后端 API
// @version 1.0
// @description 个人激励教练应用的后端服务器：AI 教练对话、每日签到、心情日记和每日挑战。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"mindmate_backend/internal/app"
	"mindmate_backend/internal/config"
	"mindmate_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly

	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	application := app.NewApp(cfg)

	// 迁移在 NewApp 初始化数据库时完成，到这里可以直接退出
	if cfg.MigrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
