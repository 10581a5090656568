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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Planilha     Planilha     `mapstructure:",squash"`
	CRM          CRM          `mapstructure:",squash"`
	Alerts       Alerts       `mapstructure:",squash"`
	Funnel       Funnel       `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                string `mapstructure:"-"`
	Driver             string `mapstructure:"database_driver"`
	Password           string `mapstructure:"database_password"`
	URL                string `mapstructure:"database_url"`
	User               string `mapstructure:"database_user"`
	MaxOpenConns       int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns       int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"database_conn_max_lifetime_min"`
}

// Planilha é a fonte de eventos de clientes (export CSV compartilhado).
type Planilha struct {
	CSVURL          string `mapstructure:"planilha_csv_url"`
	CacheTTLSeconds int    `mapstructure:"planilha_cache_ttl_seconds"`
}

// CRM é o feed paginado de captação de leads.
type CRM struct {
	BaseURL         string `mapstructure:"crm_base_url"`
	AccessToken     string `mapstructure:"crm_access_token"`
	PageSize        int    `mapstructure:"crm_page_size"`
	MaxPages        int    `mapstructure:"crm_max_pages"`
	CacheTTLSeconds int    `mapstructure:"crm_cache_ttl_seconds"`
}

// Alerts carrega os limites padrão dos alertas de inatividade.
type Alerts struct {
	IdleBrokerDays     int `mapstructure:"alert_idle_broker_days"`
	PendencyDays       int `mapstructure:"alert_pendency_days"`
	VendaInformadaDays int `mapstructure:"alert_venda_informada_days"`
}

// Funnel carrega políticas de contagem do funil.
type Funnel struct {
	ApprovalPolicy string `mapstructure:"funnel_approval_policy"`
}

type SnapshotSync struct {
	CronSchedule    string `mapstructure:"snapshot_sync_cron"`
	Enabled         bool   `mapstructure:"snapshot_sync_enabled"`
	RetentionMonths int    `mapstructure:"snapshot_retention_months"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/painel")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MIN", 30)

	viper.SetDefault("PLANILHA_CSV_URL", "")
	viper.SetDefault("PLANILHA_CACHE_TTL_SECONDS", 60) // planilha muda durante o expediente

	viper.SetDefault("CRM_BASE_URL", "")
	viper.SetDefault("CRM_ACCESS_TOKEN", "")
	viper.SetDefault("CRM_PAGE_SIZE", 100)
	viper.SetDefault("CRM_MAX_PAGES", 50)
	viper.SetDefault("CRM_CACHE_TTL_SECONDS", 3600)

	viper.SetDefault("ALERT_IDLE_BROKER_DAYS", 3)
	viper.SetDefault("ALERT_PENDENCY_DAYS", 2)
	viper.SetDefault("ALERT_VENDA_INFORMADA_DAYS", 5)

	viper.SetDefault("FUNNEL_APPROVAL_POLICY", "permissive")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *") // todos os dias às 5h
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_RETENTION_MONTHS", 24)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
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

	logrus.Warn("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
