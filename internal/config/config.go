package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Chave usada apenas em desenvolvimento; fora dele SECRET_KEY é obrigatório
const DefaultSecretKey = "your_secret_key"

var ErrInsecureSecretKey = errors.New("config: SECRET_KEY ausente ou padrão fora do ambiente de desenvolvimento")

type Config struct {
	App       App    `mapstructure:",squash"`
	Server    Server `mapstructure:",squash"`
	Auth      Auth   `mapstructure:",squash"`
	Cors      Cors   `mapstructure:",squash"`
	Menu      Menu   `mapstructure:",squash"`
	SecretKey string `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// IsDevelopment indica se APP_ENV é um ambiente de desenvolvimento
func (a App) IsDevelopment() bool {
	env := strings.ToLower(strings.TrimSpace(a.Env))
	return env == "" || env == "development" || env == "dev"
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Menu struct {
	DashboardRoute string            `mapstructure:"menu_dashboard_route"`
	RawEntryRoutes []string          `mapstructure:"menu_entry_routes"`
	EntryRoutes    map[string]string `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("SECRET_KEY", DefaultSecretKey)
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4200")

	// Nenhum card possui destino por padrão. Formato: chave=/rota,chave=/rota
	viper.SetDefault("MENU_ENTRY_ROUTES", "")
	viper.SetDefault("MENU_DASHBOARD_ROUTE", "/admin/dashboard")
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	if err := checkSecretKey(config); err != nil {
		return nil, err
	}

	config.Menu.EntryRoutes, err = ParseEntryRoutes(config.Menu.RawEntryRoutes)
	if err != nil {
		return nil, err
	}

	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	return config, nil
}

func checkSecretKey(cfg *Config) error {
	secret := strings.TrimSpace(cfg.SecretKey)
	if secret != "" && secret != DefaultSecretKey {
		return nil
	}
	if cfg.App.IsDevelopment() {
		logrus.Warn("SECRET_KEY não configurado, usando chave padrão de desenvolvimento")
		return nil
	}
	return fmt.Errorf("%w (APP_ENV=%s)", ErrInsecureSecretKey, cfg.App.Env)
}

// ParseEntryRoutes converte a lista "chave=/rota" em um mapa chave -> rota
func ParseEntryRoutes(raw []string) (map[string]string, error) {
	routes := make(map[string]string)

	for _, item := range compact(raw) {
		key, route, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		route = strings.TrimSpace(route)

		if !ok || key == "" || route == "" {
			return nil, fmt.Errorf("config: MENU_ENTRY_ROUTES inválido: %q (esperado chave=/rota)", item)
		}

		if _, exists := routes[key]; exists {
			return nil, fmt.Errorf("config: MENU_ENTRY_ROUTES repete a chave %q", key)
		}

		routes[key] = route
	}

	return routes, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
