package handlers

import (
	"campo-cidade/app/server/middlewares"
	"github.com/labstack/echo/v4"
	"net/http"
)

// RegisterHandlers 绑定全部路由；/api 下的请求都带有会话
func RegisterHandlers(e *echo.Echo, a *App) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// 照片
	e.Static("/uploads", a.images.UploadDir())
	e.Static("/imagens", a.images.ImagesDir())

	api := e.Group("/api",
		middlewares.SessionToken(a.jwt),
		middlewares.SessionState(a.sessions, a.jwt, a.l),
	)

	api.GET("/session", a.SessionGet)
	api.POST("/session/registration", a.SessionShowRegistration)
	api.POST("/session/login-page", a.SessionBackToLogin)
	api.POST("/session/view", a.SessionNavigate)
	api.POST("/session/editing", a.SessionBeginEdit)
	api.DELETE("/session/editing", a.SessionEndEdit)

	api.POST("/auth/register", a.AuthRegister)
	api.POST("/auth/login", a.AuthLogin)
	api.POST("/auth/logout", a.AuthLogout)

	api.GET("/me", a.HomeGet)
	api.PUT("/me/photo", a.ProfilePhotoUpdate)

	api.GET("/gardens", a.GardenList)
	api.POST("/gardens", a.GardenCreate)
	api.GET("/gardens/:id", a.GardenGet)
	api.PUT("/gardens/:id", a.GardenUpdate)
	api.POST("/gardens/:id/feed", a.GardenPostToFeed)

	api.GET("/feed", a.FeedList)

	api.GET("/admin/gardens", a.AdminGardenList)
	api.DELETE("/admin/gardens/:id", a.AdminGardenDelete)
}
