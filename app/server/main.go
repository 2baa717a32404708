package main

import (
	"campo-cidade/app/server/apidocs"
	"campo-cidade/app/server/handlers"
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/inits"
	"campo-cidade/app/server/jwt"
	"campo-cidade/app/server/services"
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化会话存储
	sessions, closeSessions, err := inits.SessionStore(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing session store", zap.Error(err))
	}
	defer closeSessions()

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化照片目录
	imgs, err := images.New(cfg.Storage.UploadDir, cfg.Storage.ImagesDir)
	if err != nil {
		l.Fatal("error initializing image directories", zap.Error(err))
	}

	svc := services.New(l, db, imgs)

	// 创建管理员
	if created, err := svc.BootstrapAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		l.Fatal("error creating admin user", zap.Error(err))
	} else if created {
		l.Info("admin user created", zap.String("email", cfg.Admin.Email))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, svc, sessions, j, imgs)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = cfg.System.IsProd
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if specJSON, err := apidocs.Spec(); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", specJSON))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
