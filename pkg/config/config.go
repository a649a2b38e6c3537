package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	HTTP   HTTPConfig
	Report ReportConfig
	Upload UploadConfig
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
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

// ReportConfig textos fijos del informe.
type ReportConfig struct {
	Title    string
	FileName string // sin extensión
	Footer   string
	Timezone string // IANA, ej. America/Argentina/Buenos_Aires
}

// LoadLocation resuelve la zona horaria. Si no existe devuelve la local del
// proceso junto con el error. Los binarios embeben time/tzdata, así que el
// resultado no depende de la base de zonas del sistema.
func (c ReportConfig) LoadLocation() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local, fmt.Errorf("config: zona horaria %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Location como LoadLocation, sin el error.
func (c ReportConfig) Location() *time.Location {
	loc, _ := c.LoadLocation()
	return loc
}

// UploadConfig límite de tamaño de la subida.
type UploadConfig struct {
	MaxMB int
}

// MaxBytes límite en bytes.
func (c UploadConfig) MaxBytes() int64 {
	return int64(c.MaxMB) * 1024 * 1024
}

// JWTConfig configuración de JWT. Con Secret vacío la API no exige token.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si la autenticación está activa.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, REPORT_TITLE, UPLOAD_MAX_MB, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "control-tarjeta"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Report: ReportConfig{
			Title:    getString(v, "REPORT_TITLE", "IA AIE - Control Tarjeta Cabal Credicoop"),
			FileName: getString(v, "REPORT_FILENAME", "IA_AIE_Control_Tarjeta_Cabal_Credicoop"),
			Footer:   getString(v, "REPORT_FOOTER", "AIE – Diseñado por Alfonso Alderete"),
			Timezone: getString(v, "REPORT_TIMEZONE", "America/Argentina/Buenos_Aires"),
		},
		Upload: UploadConfig{
			MaxMB: getInt(v, "UPLOAD_MAX_MB", 50),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "control-tarjeta"),
		},
	}

	if cfg.Upload.MaxMB <= 0 {
		return nil, fmt.Errorf("config: UPLOAD_MAX_MB debe ser mayor a 0 (valor: %d)", cfg.Upload.MaxMB)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido (valor: %d)", cfg.HTTP.Port)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
