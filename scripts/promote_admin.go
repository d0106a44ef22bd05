// 将已有用户提升为管理员
//
// 魔法链接登录创建的用户全部是普通角色，后台管理接口需要至少一个管理员。
// 首次部署后用本脚本手动提升。
//
// 用法: go run scripts/promote_admin.go -email admin@example.com

package main

import (
	"flag"
	"log"
	"mindmate_backend/internal/config"
	"mindmate_backend/internal/model"
	"mindmate_backend/pkg/database"
	"mindmate_backend/pkg/logger"
)

func main() {
	email := flag.String("email", "", "要提升为管理员的用户邮箱")
	flag.Parse()

	if *email == "" {
		log.Fatal("必须指定 -email 参数")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("未找到用户 %s: %v", *email, err)
	}

	if err := db.Model(&user).Update("role", model.RoleAdmin).Error; err != nil {
		log.Fatalf("更新角色失败: %v", err)
	}

	log.Printf("用户 %s 已提升为管理员", *email)
}
