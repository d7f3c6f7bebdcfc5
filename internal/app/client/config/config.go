package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv           = EnvLocal
	defaultLogLevel      = "info"
	defaultDataDir       = ".hostelmate"
	defaultDatabaseFile  = "hostelmate.db"
	defaultAdminEmail    = "admin@hostel.com"
	defaultAdminPassword = "admin123"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	LogLevel      string `mapstructure:"log_level"`
	DataDir       string `mapstructure:"data_dir"`
	DatabasePath  string `mapstructure:"database_path"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("ADMIN_EMAIL", defaultAdminEmail)
	viper.SetDefault("ADMIN_PASSWORD", defaultAdminPassword)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	// Вычисляем пути для хранения данных
	dataDir := viper.GetString("DATA_DIR")
	if dataDir == defaultDataDir {
		dataDir = filepath.Join(homeDir, dataDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории данных: %v\n", err)
	}

	databasePath := viper.GetString("DATABASE_PATH")
	if databasePath == "" {
		databasePath = filepath.Join(dataDir, defaultDatabaseFile)
	}

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		DataDir:       dataDir,
		DatabasePath:  databasePath,
		AdminEmail:    viper.GetString("ADMIN_EMAIL"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path не может быть пустым")
	}
	if c.AdminEmail == "" {
		return fmt.Errorf("admin_email не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
