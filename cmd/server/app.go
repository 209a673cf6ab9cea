package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codepulse-cc/codepulse-app/internal/app/bootstrap"
	"github.com/codepulse-cc/codepulse-app/internal/app/middleware"
	"github.com/codepulse-cc/codepulse-app/internal/infra/persistence/database"
	persistence "github.com/codepulse-cc/codepulse-app/internal/infra/persistence/ent"
	"github.com/codepulse-cc/codepulse-app/internal/infra/router"
	"github.com/codepulse-cc/codepulse-app/internal/infra/storage"
	"github.com/codepulse-cc/codepulse-app/internal/pkg/utils"
	"github.com/codepulse-cc/codepulse-app/pkg/config"
	auth_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/auth"
	category_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/category"
	image_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/image"
	post_handler "github.com/codepulse-cc/codepulse-app/pkg/handler/post"
	"github.com/codepulse-cc/codepulse-app/pkg/idgen"
	auth_service "github.com/codepulse-cc/codepulse-app/pkg/service/auth"
	category_service "github.com/codepulse-cc/codepulse-app/pkg/service/category"
	image_service "github.com/codepulse-cc/codepulse-app/pkg/service/image"
	post_service "github.com/codepulse-cc/codepulse-app/pkg/service/post"
	"github.com/codepulse-cc/codepulse-app/pkg/service/utility"

	"github.com/gin-gonic/gin"
)

// App 是应用的依赖容器，持有所有需要在生命周期内存活的组件。
type App struct {
	cfg    *config.Config
	db     *sql.DB
	engine *gin.Engine
}

// NewApp 按依赖顺序组装整个应用：
// 配置 → 公共ID编码器 → 数据库 → 缓存 → 仓储 → 服务 → 处理器 → 路由。
// 返回的 cleanup 函数负责释放底层连接。
func NewApp() (*App, func(), error) {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if err := ensureJWTSecret(cfg); err != nil {
		return nil, nil, err
	}

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, nil, fmt.Errorf("初始化公共ID编码器失败: %w", err)
	}

	db, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("关闭数据库连接失败: %v", err)
		}
	}

	entClient, err := database.NewEntClient(db, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	// 仓储层
	categoryRepo := persistence.NewCategoryRepo(entClient)
	postRepo := persistence.NewPostRepo(entClient)
	userRepo := persistence.NewUserRepo(entClient)
	imageRepo := persistence.NewImageRepo(entClient)
	txManager := persistence.NewEntTransactionManager(entClient)

	// 基础数据播种
	bootstrapper := bootstrap.NewBootstrapper(txManager, cfg)
	if err := bootstrapper.InitializeDatabase(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("初始化基础数据失败: %w", err)
	}

	// 本地图片存储
	localStore, err := storage.NewLocalStore(cfg.GetString(config.KeyUploadDir))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	// 服务层
	tokenSvc := auth_service.NewTokenService(userRepo, cfg, cacheSvc)
	authSvc := auth_service.NewAuthService(userRepo, tokenSvc)
	categorySvc := category_service.NewService(categoryRepo)
	postSvc := post_service.NewService(postRepo, txManager)
	imageSvc := image_service.NewService(imageRepo, localStore, cfg.GetString(config.KeyBaseURL))

	// 处理器与路由
	mw := middleware.NewMiddleware(tokenSvc)
	r := router.NewRouter(
		post_handler.NewHandler(postSvc),
		category_handler.NewHandler(categorySvc),
		auth_handler.NewHandler(authSvc),
		image_handler.NewHandler(imageSvc),
		mw,
		localStore.BaseDir(),
	)

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middleware.Cors())
	r.Setup(engine)

	return &App{cfg: cfg, db: db, engine: engine}, cleanup, nil
}

// ensureJWTSecret 在未配置 JWT 密钥时生成一个随机密钥并写回配置。
func ensureJWTSecret(cfg *config.Config) error {
	if cfg.GetString(config.KeyJWTSecret) != "" {
		return nil
	}
	secret, err := utils.GenerateRandomString(64)
	if err != nil {
		return fmt.Errorf("生成 JWT 密钥失败: %w", err)
	}
	cfg.Set(config.KeyJWTSecret, secret)
	log.Println("⚠️  未配置 JWTSecret，已生成随机密钥（重启后已有会话将失效）")
	return nil
}

// Run 启动 HTTP 服务并阻塞，直到收到退出信号后优雅关停。
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("应用程序启动成功，正在监听端口: %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("收到退出信号 %s，开始优雅关停...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务关停失败: %w", err)
	}

	log.Println("服务已退出。")
	return nil
}
