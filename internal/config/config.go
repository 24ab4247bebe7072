package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Ozon           Ozon           `mapstructure:",squash"`
	Wildberries    Wildberries    `mapstructure:",squash"`
	HTTPClient     HTTPClient     `mapstructure:",squash"`
	Reports        Reports        `mapstructure:",squash"`
	Sheets         Sheets         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Jobs           Jobs           `mapstructure:",squash"`
	ScratchCleanup ScratchCleanup `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Ozon struct {
	SellerURL         string  `mapstructure:"ozon_seller_url"`
	PerformanceURL    string  `mapstructure:"ozon_performance_url"`
	RequestsPerSecond float64 `mapstructure:"ozon_requests_per_second"`
}

type Wildberries struct {
	PricesURL         string  `mapstructure:"wb_prices_url"`
	ContentURL        string  `mapstructure:"wb_content_url"`
	MarketplaceURL    string  `mapstructure:"wb_marketplace_url"`
	RequestsPerSecond float64 `mapstructure:"wb_requests_per_second"`
}

// HTTPClient agrupa as configurações comuns aos clientes dos marketplaces
type HTTPClient struct {
	Timeout    time.Duration `mapstructure:"http_timeout"`
	MaxRetries int           `mapstructure:"http_max_retries"`
	RetryDelay time.Duration `mapstructure:"http_retry_delay"`
}

type Reports struct {
	PollInterval    time.Duration `mapstructure:"report_poll_interval"`
	PollMaxAttempts int           `mapstructure:"report_poll_max_attempts"`
	PageLimit       int           `mapstructure:"report_page_limit"`
	ScratchDir      string        `mapstructure:"scratch_dir"`
}

type Sheets struct {
	CredentialsFile string `mapstructure:"google_credentials_file"`
	ShareEmail      string `mapstructure:"sheets_share_email"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type Jobs struct {
	MaxConcurrentJobs int `mapstructure:"jobs_max_concurrent"`
}

type ScratchCleanup struct {
	CronSchedule string        `mapstructure:"scratch_cleanup_cron"`
	MaxAge       time.Duration `mapstructure:"scratch_max_age"`
	Enabled      bool          `mapstructure:"scratch_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketplace")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OZON_SELLER_URL", "https://api-seller.ozon.ru")
	viper.SetDefault("OZON_PERFORMANCE_URL", "https://api-performance.ozon.ru")
	viper.SetDefault("OZON_REQUESTS_PER_SECOND", 5)

	viper.SetDefault("WB_PRICES_URL", "https://discounts-prices-api.wildberries.ru")
	viper.SetDefault("WB_CONTENT_URL", "https://content-api.wildberries.ru")
	viper.SetDefault("WB_MARKETPLACE_URL", "https://marketplace-api.wildberries.ru")
	viper.SetDefault("WB_REQUESTS_PER_SECOND", 3)

	viper.SetDefault("HTTP_TIMEOUT", "60s")
	viper.SetDefault("HTTP_MAX_RETRIES", 3)
	viper.SetDefault("HTTP_RETRY_DELAY", "2s")

	// Relatórios assíncronos do Ozon ficam prontos em poucos segundos na maioria dos casos
	viper.SetDefault("REPORT_POLL_INTERVAL", "3s")
	viper.SetDefault("REPORT_POLL_MAX_ATTEMPTS", 100)
	viper.SetDefault("REPORT_PAGE_LIMIT", 50)
	viper.SetDefault("SCRATCH_DIR", os.TempDir())

	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "key.json")
	viper.SetDefault("SHEETS_SHARE_EMAIL", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("JOBS_MAX_CONCURRENT", 2)

	viper.SetDefault("SCRATCH_CLEANUP_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("SCRATCH_MAX_AGE", "6h")
	viper.SetDefault("SCRATCH_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Jobs.MaxConcurrentJobs < 1 {
		config.Jobs.MaxConcurrentJobs = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
