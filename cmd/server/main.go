package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "health-backend/docs" // 导入生成的swagger文档
	"health-backend/internal/api"
	"health-backend/internal/api/middleware"
	"health-backend/internal/config"
	"health-backend/internal/scheduler"
	"health-backend/internal/simulator"
	"health-backend/pkg/database"
	"health-backend/pkg/utils"
)

// @title           健康监测系统 API
// @version         1.0
// @description     健康监测系统后端API文档，提供体征采集、健康评分、风险预测与监护预警功能
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description 请在此输入 'Bearer {token}' 格式的 JWT token

func main() {
	// 加载配置文件
	cfg := config.InitConfig()

	// 初始化 JWT 密钥
	utils.InitJWTSecret(cfg.JWT.Secret)

	// 初始化数据库连接
	database.InitDB(cfg.Database.Path)

	// 创建体征采样器和历史缓存
	gen := simulator.NewGenerator()
	sim := simulator.New(gen, cfg)
	history := simulator.NewHistory(sim, cfg.Simulator.HistorySize)

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)

	// 创建Gin路由器
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(), gin.Recovery())

	// 设置路由
	reportService, assessmentRepo := api.SetupRoutes(router, cfg, sim, history)

	// 启动定时快照任务
	sched := scheduler.New(cfg, reportService, assessmentRepo)
	if err := sched.Start(); err != nil {
		log.Fatalf("启动定时任务失败: %v", err)
	}

	// 添加Swagger文档路由
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 展示Swagger文档
	log.Println("Swagger文档地址: http://localhost:" + cfg.Port + "/swagger/index.html")

	// 启动服务器
	log.Printf("启动服务器，监听端口 :%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("无法启动服务器: %s\n", err)
	}

}
