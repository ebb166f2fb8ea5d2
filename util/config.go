package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// 地图服务配置（Google Distance Matrix / Directions）
	// Key 为空时不创建 provider client，调度估算自动降级为几何估算
	MapAPIKey string `mapstructure:"MAP_API_KEY"`

	// 行程估算配置
	RoutingCacheTTL          time.Duration `mapstructure:"ROUTING_CACHE_TTL"`           // 缓存有效期（默认 20m）
	RoutingTimeout           time.Duration `mapstructure:"ROUTING_TIMEOUT"`             // provider 请求超时（默认 30s）
	RoutingFallbackSpeedKmh  float64       `mapstructure:"ROUTING_FALLBACK_SPEED_KMH"`  // 降级估算平均速度（默认 25km/h）
	RoutingCacheSweepEnabled bool          `mapstructure:"ROUTING_CACHE_SWEEP_ENABLED"` // 是否启用缓存定期清理
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// Normalize common quoted values from .env (e.g. REDIS_PASSWORD="...")
	config.RedisPassword = trimOptionalQuotes(config.RedisPassword)
	config.MapAPIKey = trimOptionalQuotes(config.MapAPIKey)
	return
}

func trimOptionalQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
