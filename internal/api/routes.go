package api

import (
	"log"

	"health-backend/internal/api/handlers"
	"health-backend/internal/api/middleware"
	"health-backend/internal/config"
	"health-backend/internal/predictor"
	"health-backend/internal/repository"
	"health-backend/internal/service"
	"health-backend/internal/simulator"
	"health-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

// SetupRoutes 设置所有路由
// 返回报告服务和评估仓储，供定时任务复用同一套实例。
func SetupRoutes(router *gin.Engine, cfg *config.Config, sim *simulator.Simulator,
	history *simulator.History) (*service.ReportService, *repository.AssessmentRepository) {
	// 获取数据库连接
	db := database.GetDB()

	// 初始化仓储层
	userRepo := repository.NewUserRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)
	guardianRepo := repository.NewGuardianRepository(db)

	// 初始化服务层
	userService := service.NewUserService(userRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo)
	reportService := service.NewReportService(sim, history, assessmentService, reportRepo)
	checkinService := service.NewCheckinService(checkinRepo)
	guardianService := service.NewGuardianService(guardianRepo, cfg)
	adviceService := service.NewAdviceService(cfg)
	chatService := service.NewChatService(userRepo, assessmentService, history, adviceService)
	monitorService := service.NewMonitorService()

	// 监护预警作为采样观察者，超过阈值时通知监护人
	sim.RegisterObserver("guardian", guardianService.Watch)

	// 加载疾病风险预测模型
	heartModel, err := predictor.LoadModel(cfg.Predictor.HeartModelPath)
	if err != nil {
		log.Fatalf("加载心脏病模型失败: %v", err)
	}
	diabetesModel, err := predictor.LoadModel(cfg.Predictor.DiabetesModelPath)
	if err != nil {
		log.Fatalf("加载糖尿病模型失败: %v", err)
	}

	// 初始化处理器
	authHandler := handlers.NewAuthHandler(userService)
	monitorHandler := handlers.NewMonitorHandler(sim, history)
	reportHandler := handlers.NewReportHandler(reportService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	predictHandler := handlers.NewPredictHandler(heartModel, diabetesModel, adviceService)
	chatHandler := handlers.NewChatHandler(chatService)
	guardianHandler := handlers.NewGuardianHandler(guardianService)
	checkinHandler := handlers.NewCheckinHandler(checkinService)
	systemHandler := handlers.NewSystemHandler(monitorService)

	// 公开路由组
	public := router.Group("/api/v1")
	{
		// 健康检查路由
		public.GET("/health", systemHandler.CheckHealth)

		// 认证相关路由（注册、登录和刷新令牌无需认证）
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// 实时监测路由
		monitor := public.Group("/monitor")
		{
			monitor.POST("/start", monitorHandler.Start)
			monitor.POST("/stop", monitorHandler.Stop)
			monitor.GET("/data", monitorHandler.GetData)
			monitor.GET("/summary", monitorHandler.GetSummary)
		}
	}

	// 需要认证的路由组
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		// 认证相关路由
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.GetCurrentUser)
		}

		// 健康报告路由
		report := protected.Group("/report")
		{
			report.POST("", reportHandler.BuildReport)
			report.POST("/save", reportHandler.SaveReport)
			report.GET("/trends", reportHandler.GetTrends)
		}

		// 评估数据路由
		assessment := protected.Group("/assessment")
		{
			assessment.POST("/save", assessmentHandler.Save)
			assessment.GET("/list", assessmentHandler.List)
			assessment.POST("/load", assessmentHandler.Load)
			assessment.POST("/delete", assessmentHandler.Delete)
		}

		// 风险预测路由
		predict := protected.Group("/predict")
		{
			predict.POST("/diabetes", predictHandler.PredictDiabetes)
			predict.POST("/heart", predictHandler.PredictHeart)
			predict.POST("/prompt", predictHandler.BuildPrompt)
			predict.POST("/advice", predictHandler.GetAdvice)
		}

		// AI健康助手路由
		protected.POST("/chat/completion", chatHandler.Completion)

		// 监护预警路由
		guardian := protected.Group("/guardian")
		{
			guardian.GET("/config", guardianHandler.GetConfig)
			guardian.POST("/config", guardianHandler.SaveConfig)
			guardian.POST("/trigger", guardianHandler.Trigger)
			guardian.GET("/alerts", guardianHandler.RecentAlerts)
		}

		// 签到路由
		checkin := protected.Group("/checkin")
		{
			checkin.POST("", checkinHandler.Checkin)
			checkin.GET("/status", checkinHandler.Status)
		}

		// 系统监控
		protected.GET("/system/metrics", systemHandler.GetMetrics)
	}

	return reportService, assessmentRepo
}
