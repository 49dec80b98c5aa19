package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nguyentuanthien2384/unishare-be-main/config"
	"github.com/nguyentuanthien2384/unishare-be-main/database"
	"github.com/nguyentuanthien2384/unishare-be-main/handlers"
	"github.com/nguyentuanthien2384/unishare-be-main/logger"
	"github.com/nguyentuanthien2384/unishare-be-main/middleware"
	"github.com/nguyentuanthien2384/unishare-be-main/models"
	"github.com/nguyentuanthien2384/unishare-be-main/repositories"
	"github.com/nguyentuanthien2384/unishare-be-main/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting unishare service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.Init(cfg.Log.Level)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Major{},
		&models.Document{},
		&models.Log{},
	)
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, "uploads"), 0o755); err != nil {
		log.Fatalf("create uploads dir failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, "thumbnails"), 0o755); err != nil {
		log.Fatalf("create thumbnails dir failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB, database.RedisClient).BuildContainer()
	serviceContainer := services.NewContainer(repoContainer)
	handlers.SetServices(serviceContainer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// Browsing the catalog and the visible library needs no account.
	public := api.Group("")
	{
		public.GET("/documents", handlers.ListDocuments)
		public.GET("/documents/:id", handlers.GetDocument)
		public.GET("/documents/:id/preview", handlers.PreviewDocument)
		public.GET("/documents/:id/thumbnail", handlers.DocumentThumbnail)
		public.GET("/documents/user/:userId/uploads", handlers.ListUserDocuments)

		public.GET("/categories/subjects", handlers.ListSubjects)
		public.GET("/categories/majors", handlers.ListMajors)
		public.GET("/categories/majors/:id", handlers.GetMajor)

		public.GET("/users/profile/:userId", handlers.GetUserProfile)
		public.GET("/users/:userId/stats", handlers.GetUserStats)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/documents/upload", handlers.UploadDocument)
		protected.GET("/documents/my-uploads", handlers.ListMyDocuments)
		protected.GET("/documents/:id/download", handlers.DownloadDocument)
		protected.PATCH("/documents/:id", handlers.UpdateDocument)
		protected.DELETE("/documents/:id", handlers.DeleteDocument)

		me := protected.Group("/users/me")
		{
			me.GET("/profile", handlers.GetMyProfile)
			me.PATCH("/profile", handlers.UpdateMyProfile)
			me.POST("/change-password", handlers.ChangeMyPassword)
			me.DELETE("/account", handlers.DeleteMyAccount)
			me.GET("/stats", handlers.GetMyStats)
			me.GET("/upload-stats", handlers.GetMyUploadStats)
		}
	}

	moderation := api.Group("")
	moderation.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleModerator, models.RoleAdmin))
	{
		moderation.GET("/admin/users", handlers.AdminListUsers)
		moderation.POST("/admin/users/:userId/block", handlers.AdminBlockUser)
		moderation.POST("/admin/users/:userId/unblock", handlers.AdminUnblockUser)
		moderation.POST("/admin/users/:userId/reset-password", handlers.AdminResetPassword)

		moderation.GET("/admin/documents", handlers.AdminListDocuments)
		moderation.POST("/admin/documents/:id/block", handlers.AdminBlockDocument)
		moderation.POST("/admin/documents/:id/unblock", handlers.AdminUnblockDocument)

		moderation.GET("/admin/subjects", handlers.ListSubjects)
		moderation.POST("/admin/subjects", handlers.CreateSubject)
		moderation.PATCH("/admin/subjects/:id", handlers.UpdateSubject)
		moderation.DELETE("/admin/subjects/:id", handlers.DeleteSubject)

		moderation.GET("/admin/majors", handlers.ListMajors)
		moderation.POST("/admin/majors", handlers.CreateMajor)
		moderation.PATCH("/admin/majors/:id", handlers.UpdateMajor)
		moderation.DELETE("/admin/majors/:id", handlers.DeleteMajor)

		moderation.GET("/statistics/platform", handlers.GetPlatformStats)
		moderation.GET("/statistics/uploads-over-time", handlers.GetUploadsOverTime)
	}

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.DELETE("/admin/users/:userId", handlers.AdminDeleteUser)
		admin.PATCH("/admin/users/:userId/role", handlers.AdminSetUserRole)
		admin.POST("/admin/delegate-admin/:userId", handlers.AdminDelegateAdmin)
		admin.DELETE("/admin/documents/:id", handlers.AdminDeleteDocument)
	}
}
