package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

var (
	ErrInvalidCatalogSource = errors.New("invalid store catalog source")
	ErrInvalidLookbackDays  = errors.New("refresh lookback days must be positive")
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Refresh     Refresh     `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
	Export      Export      `mapstructure:",squash"`
	Catalog     Catalog     `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Refresh controla a geração das métricas das lojas
type Refresh struct {
	SimulatedLatency time.Duration `mapstructure:"refresh_simulated_latency"`
	LookbackDays     int           `mapstructure:"refresh_default_lookback_days"`
}

type AutoRefresh struct {
	CronSchedule string `mapstructure:"auto_refresh_cron"`
	Enabled      bool   `mapstructure:"auto_refresh_enabled"`
}

type Export struct {
	FilenamePrefix string `mapstructure:"export_filename_prefix"`
}

type Catalog struct {
	Source string `mapstructure:"store_catalog_source"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/frontrow?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)

	viper.SetDefault("REFRESH_SIMULATED_LATENCY", "1500ms")
	viper.SetDefault("REFRESH_DEFAULT_LOOKBACK_DAYS", 30)

	viper.SetDefault("AUTO_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("AUTO_REFRESH_ENABLED", false)

	viper.SetDefault("EXPORT_FILENAME_PREFIX", "frontrow-invoice")
	viper.SetDefault("STORE_CATALOG_SOURCE", CatalogSourceSeed)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	if err := config.Validate(); err != nil {
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

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceSeed, CatalogSourcePostgres:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCatalogSource, c.Catalog.Source)
	}

	if c.Refresh.LookbackDays <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLookbackDays, c.Refresh.LookbackDays)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
