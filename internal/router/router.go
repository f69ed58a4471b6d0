// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/handler"
	"hopebridge/internal/handler/admin"
	"hopebridge/internal/handler/auth"
	"hopebridge/internal/handler/site"
	"hopebridge/internal/mailer"
	"hopebridge/internal/middleware"
	"hopebridge/internal/schema"
	"hopebridge/internal/stats"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, boot *schema.Bootstrapper, buf *stats.Buffer, m *mailer.Mailer, secureCookies bool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAdmin)

	// 管理員登入 / 登出
	api.POST("/auth/login", auth.LoginHandler(db, boot, secureCookies))
	api.POST("/auth/logout", auth.LogoutHandler(secureCookies))
	apiAuthMe := api.Group("/auth/me", middleware.RequireAdmin)
	apiAuthMe.GET("", auth.MeHandler(db))
	apiAuthMe.PUT("/password", auth.UpdateMyPasswordHandler(db))

	// 公開內容
	api.GET("/blog", site.ListBlogHandler(db, cch, boot))
	api.GET("/blog/:slug", site.GetBlogPostHandler(db, boot, buf))
	api.GET("/stories", site.ListStoriesHandler(db, cch, boot))
	api.GET("/stories/:slug", site.GetStoryHandler(db, boot, buf))
	api.POST("/stories/:id/like", site.LikeStoryHandler(buf))
	api.GET("/videos", site.ListVideosHandler(db, cch, boot))
	api.POST("/videos/:id/view", site.ViewVideoHandler(buf))
	api.GET("/gallery", site.ListGalleryHandler(db, cch, boot))
	api.GET("/team", site.ListTeamHandler(db, cch, boot))
	api.GET("/tenders", site.ListTendersHandler(db, cch, boot))
	api.POST("/tenders/:id/download", site.DownloadTenderHandler(db, boot, buf))
	api.GET("/jobs", site.ListJobsHandler(db, cch, boot))
	api.GET("/reports", site.ListReportsHandler(db, cch, boot))
	api.POST("/reports/:id/download", site.DownloadReportHandler(db, boot, buf))

	// 訪客表單
	api.POST("/contact", site.CreateContactMessageHandler(db, boot, m))
	api.POST("/volunteers", site.CreateVolunteerHandler(db, boot, m))
	api.POST("/newsletter", site.SubscribeHandler(db, boot))

	// 管理端內容管理（需登入）
	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.GET("/blog", admin.ListBlogPostsHandler(db, boot))
	apiAdmin.POST("/blog", admin.CreateBlogPostHandler(db, cch, boot))
	apiAdmin.PUT("/blog", admin.UpdateBlogPostHandler(db, cch, boot))
	apiAdmin.DELETE("/blog", admin.DeleteBlogPostHandler(db, cch, boot))
	apiAdmin.GET("/stories", admin.ListStoriesHandler(db, boot))
	apiAdmin.POST("/stories", admin.CreateStoryHandler(db, cch, boot))
	apiAdmin.PUT("/stories", admin.UpdateStoryHandler(db, cch, boot))
	apiAdmin.DELETE("/stories", admin.DeleteStoryHandler(db, cch, boot))
	apiAdmin.GET("/videos", admin.ListVideosHandler(db, boot))
	apiAdmin.POST("/videos", admin.CreateVideoHandler(db, cch, boot))
	apiAdmin.PUT("/videos", admin.UpdateVideoHandler(db, cch, boot))
	apiAdmin.DELETE("/videos", admin.DeleteVideoHandler(db, cch, boot))
	apiAdmin.GET("/gallery", admin.ListGalleryImagesHandler(db, boot))
	apiAdmin.POST("/gallery", admin.CreateGalleryImageHandler(db, cch, boot))
	apiAdmin.PUT("/gallery", admin.UpdateGalleryImageHandler(db, cch, boot))
	apiAdmin.DELETE("/gallery", admin.DeleteGalleryImageHandler(db, cch, boot))
	apiAdmin.GET("/team", admin.ListTeamMembersHandler(db, boot))
	apiAdmin.POST("/team", admin.CreateTeamMemberHandler(db, cch, boot))
	apiAdmin.PUT("/team", admin.UpdateTeamMemberHandler(db, cch, boot))
	apiAdmin.DELETE("/team", admin.DeleteTeamMemberHandler(db, cch, boot))
	apiAdmin.GET("/tenders", admin.ListTendersHandler(db, boot))
	apiAdmin.POST("/tenders", admin.CreateTenderHandler(db, cch, boot))
	apiAdmin.PUT("/tenders", admin.UpdateTenderHandler(db, cch, boot))
	apiAdmin.DELETE("/tenders", admin.DeleteTenderHandler(db, cch, boot))
	apiAdmin.GET("/jobs", admin.ListJobsHandler(db, boot))
	apiAdmin.POST("/jobs", admin.CreateJobHandler(db, cch, boot))
	apiAdmin.PUT("/jobs", admin.UpdateJobHandler(db, cch, boot))
	apiAdmin.DELETE("/jobs", admin.DeleteJobHandler(db, cch, boot))
	apiAdmin.GET("/reports", admin.ListReportsHandler(db, boot))
	apiAdmin.POST("/reports", admin.CreateReportHandler(db, cch, boot))
	apiAdmin.PUT("/reports", admin.UpdateReportHandler(db, cch, boot))
	apiAdmin.DELETE("/reports", admin.DeleteReportHandler(db, cch, boot))
	apiAdmin.GET("/contacts", admin.ListContactMessagesHandler(db, boot))
	apiAdmin.POST("/contacts", admin.CreateContactMessageHandler(db, boot))
	apiAdmin.PUT("/contacts", admin.UpdateContactMessageHandler(db, boot))
	apiAdmin.DELETE("/contacts", admin.DeleteContactMessageHandler(db, boot))
	apiAdmin.GET("/volunteers", admin.ListVolunteersHandler(db, boot))
	apiAdmin.POST("/volunteers", admin.CreateVolunteerHandler(db, boot))
	apiAdmin.PUT("/volunteers", admin.UpdateVolunteerHandler(db, boot))
	apiAdmin.DELETE("/volunteers", admin.DeleteVolunteerHandler(db, boot))
	apiAdmin.GET("/newsletter", admin.ListSubscribersHandler(db, boot))
	apiAdmin.POST("/newsletter", admin.CreateSubscriberHandler(db, boot))
	apiAdmin.PUT("/newsletter", admin.UpdateSubscriberHandler(db, boot))
	apiAdmin.DELETE("/newsletter", admin.DeleteSubscriberHandler(db, boot))
}
