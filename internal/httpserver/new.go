package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/seolargo/skivori-case/config"
	"github.com/seolargo/skivori-case/pkg/discord"
	"github.com/seolargo/skivori-case/pkg/kafka"
	"github.com/seolargo/skivori-case/pkg/log"
	pkgRedis "github.com/seolargo/skivori-case/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	producer kafka.IProducer

	// Service Configuration
	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	Producer kafka.IProducer

	// Service Configuration
	Config *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration (optional)
		producer: cfg.Producer,

		// Service Configuration
		config: cfg.Config,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Service Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Messaging and Discord are optional.

	return nil
}
