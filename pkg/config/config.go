package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// MaxUploadBytes tope por defecto de un archivo subido (50 MiB).
const MaxUploadBytes int64 = 50 << 20

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Data   DataConfig
	Upload UploadConfig
	Docs   DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	SiteName string // título del sitio en las páginas
	LogLevel string
	// StrictValidation rechaza colecciones con entidades inválidas en vez de guardarlas tal cual.
	StrictValidation bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig rutas de los documentos JSON.
type DataConfig struct {
	Dir            string
	CategoriesFile string
	GalleryFile    string
}

// UploadConfig directorio público de archivos subidos.
type UploadConfig struct {
	Dir       string
	URLPrefix string // p. ej. /uploads
	MaxBytes  int64
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	File string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: PORT, DATA_DIR, UPLOAD_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya preparada (tests).
func FromViper(v *viper.Viper) (*Config, error) {
	dataDir := getString(v, "DATA_DIR", "data")
	cfg := &Config{
		App: AppConfig{
			Env:              getString(v, "APP_ENV", "development"),
			SiteName:         getString(v, "SITE_NAME", "Hair By Janet"),
			LogLevel:         getString(v, "LOG_LEVEL", "info"),
			StrictValidation: getBool(v, "STRICT_VALIDATION", false),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 3001),
		},
		Data: DataConfig{
			Dir:            dataDir,
			CategoriesFile: getString(v, "CATEGORIES_FILE", filepath.Join(dataDir, "categories.json")),
			GalleryFile:    getString(v, "GALLERY_FILE", filepath.Join(dataDir, "gallery.json")),
		},
		Upload: UploadConfig{
			Dir:       getString(v, "UPLOAD_DIR", filepath.Join("public", "uploads")),
			URLPrefix: "/" + strings.Trim(getString(v, "UPLOAD_URL_PREFIX", "/uploads"), "/"),
			MaxBytes:  int64(getInt(v, "UPLOAD_MAX_BYTES", int(MaxUploadBytes))),
		},
		Docs: DocsConfig{
			File: getString(v, "DOCS_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Upload.MaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES inválido: %d", cfg.Upload.MaxBytes)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return -1
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
