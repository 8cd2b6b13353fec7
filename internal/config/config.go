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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	AdLibrary     AdLibrary     `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Taxonomy      Taxonomy      `mapstructure:",squash"`
	AdLibrarySync AdLibrarySync `mapstructure:",squash"`
	PipelineRun   PipelineRun   `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

// AdLibrary aponta para a API de datasets do ator de scraping
type AdLibrary struct {
	URL       string `mapstructure:"adlibrary_url"`
	Token     string `mapstructure:"adlibrary_token"`
	DatasetID string `mapstructure:"adlibrary_dataset_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Taxonomy indica de onde carregar as tabelas de classificação
type Taxonomy struct {
	Dir string `mapstructure:"taxonomy_dir"`
}

type AdLibrarySync struct {
	CronSchedule string `mapstructure:"adlibrary_sync_cron"`
	Enabled      bool   `mapstructure:"adlibrary_sync_enabled"`
}

type PipelineRun struct {
	CronSchedule string `mapstructure:"pipeline_run_cron"`
	Enabled      bool   `mapstructure:"pipeline_run_enabled"`
	Workers      int    `mapstructure:"pipeline_run_workers"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leadradar")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("ADLIBRARY_URL", "https://api.apify.com")
	viper.SetDefault("ADLIBRARY_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ADLIBRARY_DATASET_ID", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("TAXONOMY_DIR", "taxonomies")

	// Defaults para sincronização do dataset de anúncios
	viper.SetDefault("ADLIBRARY_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("ADLIBRARY_SYNC_ENABLED", false)    // Habilitar sincronização do dataset

	// Defaults para a execução do pipeline de scoring
	viper.SetDefault("PIPELINE_RUN_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("PIPELINE_RUN_ENABLED", false)    // Habilitar execução automática
	viper.SetDefault("PIPELINE_RUN_WORKERS", 4)        // Workers de scoring por execução

	viper.SetDefault("LOG_LEVEL", "debug")
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
		filepath.Join(cwd, "../.env"),            // Diretório acima
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
