package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/config"
	"github.com/oksasatya/go-blog-api/internal/infrastructure/localfs"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	pgPool     *pgxpool.Pool
	jwtManager *helpers.JWTManager
	storage    *localfs.Storage
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetStorage(s *localfs.Storage)     { storage = s }
func GetStorage() *localfs.Storage      { return storage }
func SetJWT(m *helpers.JWTManager)      { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
