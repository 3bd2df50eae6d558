package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Apple       Apple       `mapstructure:",squash"`
	LLM         LLM         `mapstructure:",squash"`
	RankingSync RankingSync `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Apple agrupa os endpoints públicos de feeds de ranking e de lookup de detalhes.
type Apple struct {
	FeedBaseURL   string `mapstructure:"apple_feed_base_url"`
	LookupBaseURL string `mapstructure:"apple_lookup_base_url"`
	UserAgent     string `mapstructure:"apple_user_agent"`
}

type LLM struct {
	URL     string `mapstructure:"llm_url"`
	APIKey  string `mapstructure:"llm_api_key"`
	Model   string `mapstructure:"llm_model"`
	Enabled bool   `mapstructure:"llm_enabled"`
}

type RankingSync struct {
	CronSchedule string `mapstructure:"ranking_sync_cron"`
	Enabled      bool   `mapstructure:"ranking_sync_enabled"`
	FeedLimit    int    `mapstructure:"ranking_sync_feed_limit"`
	DelaySeconds int    `mapstructure:"ranking_sync_request_delay_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/appranknavi")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APPLE_FEED_BASE_URL", "https://rss.marketingtools.apple.com/api/v2")
	viper.SetDefault("APPLE_LOOKUP_BASE_URL", "https://itunes.apple.com/lookup")
	viper.SetDefault("APPLE_USER_AGENT", "AppRankNavi/1.0")

	viper.SetDefault("LLM_URL", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_ENABLED", true)

	// Busca diária às 22h UTC (7h JST)
	viper.SetDefault("RANKING_SYNC_CRON", "0 22 * * *")
	viper.SetDefault("RANKING_SYNC_ENABLED", false)
	viper.SetDefault("RANKING_SYNC_FEED_LIMIT", 100)
	viper.SetDefault("RANKING_SYNC_REQUEST_DELAY_SECONDS", 1)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
