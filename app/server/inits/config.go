package inits

import (
	"campo-cidade/app/server/config"
	"campo-cidade/app/server/constants"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	cfg.System.Listen = envOr("LISTEN", ":1323")
	cfg.System.DBConnectionString = envOr("DB_CONN", constants.DefaultDatabaseFile)
	cfg.System.RedisConnectionString = envOr("REDIS_CONN", "")

	cfg.Storage.UploadDir = envOr("UPLOAD_DIR", constants.UploadDir)
	cfg.Storage.ImagesDir = envOr("IMAGES_DIR", constants.ImagesDir)

	cfg.Admin.Email = envOr("ADMIN_EMAIL", constants.AdminEmail)
	cfg.Admin.Password = envOr("ADMIN_PASSWORD", constants.AdminPassword)

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); exist && sigsk != "" {
		cfg.Security.SignatureSecretKey = sigsk
	} else if cfg.System.IsProd {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		// 开发环境下使用随机密钥，重启后会话全部失效
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate signature key: %w", err)
		}
		cfg.Security.SignatureSecretKey = hex.EncodeToString(key)
	}

	return &cfg, nil
}

func envOr(key string, fallback string) string {
	if v, exist := os.LookupEnv(key); exist && v != "" {
		return v
	}
	return fallback
}
