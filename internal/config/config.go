package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de fonte de dados suportados
const (
	SourceCSV      = "csv"
	SourceWorkbook = "workbook"
	SourceSheets   = "sheets"
	SourcePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	DataSource   DataSource   `mapstructure:",squash"`
	CSV          CSV          `mapstructure:",squash"`
	Workbook     Workbook     `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Session      Session      `mapstructure:",squash"`
	CacheRefresh CacheRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DataSource struct {
	Kind              string `mapstructure:"data_source"`
	ColumnMappingFile string `mapstructure:"column_mapping_file"`
	MasterSheet       string `mapstructure:"master_sheet"`
	ActivitiesSheet   string `mapstructure:"activities_sheet"`
}

type CSV struct {
	MasterPath     string `mapstructure:"csv_master_path"`
	ActivitiesPath string `mapstructure:"csv_activities_path"`
}

type Workbook struct {
	Path string `mapstructure:"workbook_path"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"sheets_spreadsheet_id"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type Dashboard struct {
	AlertWindowDays int `mapstructure:"alert_window_days"`
	TopKolsLimit    int `mapstructure:"top_kols_limit"`
}

type Session struct {
	Secret string        `mapstructure:"session_secret"`
	TTL    time.Duration `mapstructure:"session_ttl"`
}

type CacheRefresh struct {
	CronSchedule string `mapstructure:"cache_refresh_cron"`
	Enabled      bool   `mapstructure:"cache_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "Local")

	viper.SetDefault("DATA_SOURCE", SourceCSV)
	viper.SetDefault("COLUMN_MAPPING_FILE", "")
	viper.SetDefault("MASTER_SHEET", "KOL_Master")
	viper.SetDefault("ACTIVITIES_SHEET", "Activities")

	viper.SetDefault("CSV_MASTER_PATH", "data/kol_master.csv")
	viper.SetDefault("CSV_ACTIVITIES_PATH", "data/activities.csv")

	viper.SetDefault("WORKBOOK_PATH", "data/kol_dashboard.xlsx")

	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "google_credentials.json")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kol?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_TTL", "60s")

	viper.SetDefault("ALERT_WINDOW_DAYS", 30)
	viper.SetDefault("TOP_KOLS_LIMIT", 10)

	viper.SetDefault("SESSION_SECRET", "your_session_secret") // ONLY LOCAL
	viper.SetDefault("SESSION_TTL", "12h")

	viper.SetDefault("CACHE_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("CACHE_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// secondsToDurationHookFunc aceita durações como número inteiro de segundos
// ("60"); textos com unidade ("60s", "12h") seguem para o hook padrão
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			seconds, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return data, nil
			}
			return time.Duration(seconds) * time.Second, nil
		case int:
			return time.Duration(value) * time.Second, nil
		case int64:
			return time.Duration(value) * time.Second, nil
		}

		return data, nil
	}
}

// finalize calcula os campos derivados e valida a configuração
func (c *Config) finalize() error {
	location, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.App.Timezone, err)
	}
	c.App.Location = location

	c.DataSource.Kind = strings.ToLower(strings.TrimSpace(c.DataSource.Kind))
	switch c.DataSource.Kind {
	case SourceCSV, SourceWorkbook, SourceSheets, SourcePostgres:
	default:
		return fmt.Errorf("config: unknown data source %q", c.DataSource.Kind)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: cache ttl must be positive, got %s", c.Cache.TTL)
	}

	if c.Dashboard.AlertWindowDays <= 0 {
		return fmt.Errorf("config: alert window must be positive, got %d", c.Dashboard.AlertWindowDays)
	}

	if c.Dashboard.TopKolsLimit <= 0 {
		c.Dashboard.TopKolsLimit = 10
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
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
