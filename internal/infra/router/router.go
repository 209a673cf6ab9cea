package router

import (
	"github.com/codepulse-cc/codepulse-app/internal/app/middleware"
	auth_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/auth"
	category_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/category"
	image_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/image"
	post_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/post"

	"github.com/gin-gonic/gin"
)

// Router 聚合所有资源的处理器并负责路由注册。
type Router struct {
	postHandler     *post_handler.Handler
	categoryHandler *category_handler.Handler
	authHandler     *auth_handler.Handler
	imageHandler    *image_handler.Handler
	mw              *middleware.Middleware
	uploadDir       string
}

// NewRouter 是 Router 的构造函数。
func NewRouter(
	postHandler *post_handler.Handler,
	categoryHandler *category_handler.Handler,
	authHandler *auth_handler.Handler,
	imageHandler *image_handler.Handler,
	mw *middleware.Middleware,
	uploadDir string,
) *Router {
	return &Router{
		postHandler:     postHandler,
		categoryHandler: categoryHandler,
		authHandler:     authHandler,
		imageHandler:    imageHandler,
		mw:              mw,
		uploadDir:       uploadDir,
	}
}

// Setup 在给定的 gin 引擎上注册全部路由。
func (r *Router) Setup(engine *gin.Engine) {
	// 已落盘的图片通过静态路由直接对外提供
	engine.Static("/uploads", r.uploadDir)

	api := engine.Group("/api")

	r.registerPostRoutes(api)
	r.registerCategoryRoutes(api)
	r.registerAuthRoutes(api)
	r.registerImageRoutes(api)
}

func (r *Router) registerPostRoutes(api *gin.RouterGroup) {
	postsPublic := api.Group("/posts")
	{
		postsPublic.GET("", r.postHandler.List)
		// 同一路径参数先按公共 ID 解析，再按短链接标识回退
		postsPublic.GET("/:slug", r.postHandler.Get)
	}

	postsWriter := api.Group("/posts").Use(r.mw.JWTAuth(), r.mw.WriterAuth())
	{
		postsWriter.POST("", r.postHandler.Create)
		postsWriter.PUT("/:id", r.postHandler.Update)
		postsWriter.DELETE("/:id", r.postHandler.Delete)
	}
}

func (r *Router) registerCategoryRoutes(api *gin.RouterGroup) {
	categoriesPublic := api.Group("/categories")
	{
		categoriesPublic.GET("", r.categoryHandler.List)
		categoriesPublic.GET("/count", r.categoryHandler.Count)
		categoriesPublic.GET("/:id", r.categoryHandler.Get)
	}

	categoriesWriter := api.Group("/categories").Use(r.mw.JWTAuth(), r.mw.WriterAuth())
	{
		categoriesWriter.POST("", r.categoryHandler.Create)
		categoriesWriter.PUT("/:id", r.categoryHandler.Update)
		categoriesWriter.DELETE("/:id", r.categoryHandler.Delete)
	}
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	authSession := api.Group("/auth").Use(r.mw.JWTAuth())
	{
		authSession.POST("/logout", r.authHandler.Logout)
	}
}

func (r *Router) registerImageRoutes(api *gin.RouterGroup) {
	imagesPublic := api.Group("/images")
	{
		imagesPublic.GET("", r.imageHandler.List)
	}

	imagesWriter := api.Group("/images").Use(r.mw.JWTAuth(), r.mw.WriterAuth())
	{
		imagesWriter.POST("", r.imageHandler.Upload)
	}
}
