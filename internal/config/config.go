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
	"github.com/vfg2006/sales-forecaster/internal/domain"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Forecast   Forecast   `mapstructure:",squash"`
	Retraining Retraining `mapstructure:",squash"`
	Dashboard  Dashboard  `mapstructure:",squash"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Server struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Enabled bool   `mapstructure:"api_enabled"`
}

type Database struct {
	DSN                   string `mapstructure:"-"`
	Driver                string `mapstructure:"database_driver"`
	Password              string `mapstructure:"database_password"`
	URL                   string `mapstructure:"database_url"`
	User                  string `mapstructure:"database_user"`
	SSLMode               string `mapstructure:"database_sslmode"`
	QueryTimeoutSeconds   int    `mapstructure:"database_query_timeout_seconds"`
	ConnectTimeoutSeconds int    `mapstructure:"database_connect_timeout_seconds"`
	MaxOpenConns          int    `mapstructure:"database_max_open_conns"`
	AutoMigrate           bool   `mapstructure:"database_auto_migrate"`
}

// QueryTimeout é o limite de cada consulta ao banco
func (d Database) QueryTimeout() time.Duration {
	return time.Duration(d.QueryTimeoutSeconds) * time.Second
}

// ConnectTimeout é o limite da conexão inicial
func (d Database) ConnectTimeout() time.Duration {
	return time.Duration(d.ConnectTimeoutSeconds) * time.Second
}

type Forecast struct {
	ModelName         string `mapstructure:"forecast_model_name"`
	WindowDays        int    `mapstructure:"forecast_window_days"`
	HorizonDays       int    `mapstructure:"forecast_horizon_days"`
	AROrder           int    `mapstructure:"forecast_ar_order"`
	MaxIterations     int    `mapstructure:"forecast_max_iterations"`
	FitTimeoutSeconds int    `mapstructure:"forecast_fit_timeout_seconds"`
}

// FitTimeout é o tempo máximo de otimização de um treino
func (f Forecast) FitTimeout() time.Duration {
	return time.Duration(f.FitTimeoutSeconds) * time.Second
}

type Retraining struct {
	Enabled             bool `mapstructure:"forecast_sync_enabled"`
	PollIntervalSeconds int  `mapstructure:"forecast_poll_interval_seconds"`
}

// PollInterval é o intervalo entre verificações de mudança no livro-razão
func (r Retraining) PollInterval() time.Duration {
	return time.Duration(r.PollIntervalSeconds) * time.Second
}

type Dashboard struct {
	HistoryDays      int `mapstructure:"dashboard_history_days"`
	TopSalesLimit    int `mapstructure:"dashboard_top_sales_limit"`
	RecentSalesLimit int `mapstructure:"dashboard_recent_sales_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("API_ENABLED", true)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DATABASE_CONNECT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false) // Cria o schema na inicialização

	viper.SetDefault("FORECAST_MODEL_NAME", domain.DefaultModelName)
	viper.SetDefault("FORECAST_WINDOW_DAYS", 270) // Janela de treino em dias
	viper.SetDefault("FORECAST_HORIZON_DAYS", domain.ForecastHorizonDays)
	viper.SetDefault("FORECAST_AR_ORDER", domain.AROrder)
	viper.SetDefault("FORECAST_MAX_ITERATIONS", 500) // Orçamento de iterações do otimizador
	viper.SetDefault("FORECAST_FIT_TIMEOUT_SECONDS", 30)

	viper.SetDefault("FORECAST_SYNC_ENABLED", true)
	viper.SetDefault("FORECAST_POLL_INTERVAL_SECONDS", 1800) // 30 minutos

	viper.SetDefault("DASHBOARD_HISTORY_DAYS", 30)
	viper.SetDefault("DASHBOARD_TOP_SALES_LIMIT", 5)
	viper.SetDefault("DASHBOARD_RECENT_SALES_LIMIT", 10)

	viper.SetDefault("LOG_LEVEL", "info")
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
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = BuildDSN(config.Database)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// BuildDSN monta a string de conexão a partir das partes configuradas
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	params := ""
	if db.SSLMode != "" {
		params = "sslmode=" + db.SSLMode
	}
	if db.ConnectTimeoutSeconds > 0 {
		if params != "" {
			params += "&"
		}
		params += fmt.Sprintf("connect_timeout=%d", db.ConnectTimeoutSeconds)
	}
	if params != "" {
		dsn += "?" + params
	}

	return dsn
}

// Validate rejeita configurações que impedem o pipeline de rodar
func (c *Config) Validate() error {
	if c.Forecast.HorizonDays != domain.ForecastHorizonDays {
		return fmt.Errorf("FORECAST_HORIZON_DAYS deve ser %d, recebido %d", domain.ForecastHorizonDays, c.Forecast.HorizonDays)
	}
	if c.Forecast.AROrder != domain.AROrder {
		return fmt.Errorf("FORECAST_AR_ORDER deve ser %d, recebido %d", domain.AROrder, c.Forecast.AROrder)
	}
	if c.Forecast.WindowDays <= c.Forecast.AROrder {
		return fmt.Errorf("FORECAST_WINDOW_DAYS deve ser maior que %d, recebido %d", c.Forecast.AROrder, c.Forecast.WindowDays)
	}
	if c.Forecast.MaxIterations <= 0 {
		return fmt.Errorf("FORECAST_MAX_ITERATIONS deve ser positivo")
	}
	if c.Forecast.ModelName == "" {
		return fmt.Errorf("FORECAST_MODEL_NAME não pode ser vazio")
	}
	if c.Retraining.PollIntervalSeconds <= 0 {
		return fmt.Errorf("FORECAST_POLL_INTERVAL_SECONDS deve ser positivo")
	}
	if c.Database.QueryTimeoutSeconds <= 0 {
		return fmt.Errorf("DATABASE_QUERY_TIMEOUT_SECONDS deve ser positivo")
	}
	if c.Dashboard.HistoryDays <= 0 {
		return fmt.Errorf("DASHBOARD_HISTORY_DAYS deve ser positivo")
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

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
