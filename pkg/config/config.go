package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Datos  DatosConfig
	Log    LogConfig
	Ventas VentasConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DatosConfig ubicación de los documentos JSON persistidos.
// Cada documento se lee completo al inicio y se reescribe completo tras cada mutación.
type DatosConfig struct {
	Dir              string // directorio base de los archivos
	Usuarios         string
	Stock            string
	Precios          string
	HistorialVentas  string
	VentasRealizadas string
}

// RutaUsuarios devuelve la ruta completa de usuarios.json.
func (d DatosConfig) RutaUsuarios() string { return filepath.Join(d.Dir, d.Usuarios) }

// RutaStock devuelve la ruta completa de stock.json.
func (d DatosConfig) RutaStock() string { return filepath.Join(d.Dir, d.Stock) }

// RutaPrecios devuelve la ruta completa de precios.json.
func (d DatosConfig) RutaPrecios() string { return filepath.Join(d.Dir, d.Precios) }

// RutaHistorialVentas devuelve la ruta completa de historial_ventas.json.
func (d DatosConfig) RutaHistorialVentas() string { return filepath.Join(d.Dir, d.HistorialVentas) }

// RutaVentasRealizadas devuelve la ruta completa de ventas_realizadas.json.
func (d DatosConfig) RutaVentasRealizadas() string { return filepath.Join(d.Dir, d.VentasRealizadas) }

// LogConfig configuración del logger.
type LogConfig struct {
	Level string
	File  string
}

// VentasConfig parámetros del módulo de ventas y reportes.
type VentasConfig struct {
	PorPagina int // ventas mostradas por página en el historial admin
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, LOG_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-cli"),
		},
		Datos: DatosConfig{
			Dir:              getString(v, "DATA_DIR", "."),
			Usuarios:         getString(v, "DATA_USUARIOS", "usuarios.json"),
			Stock:            getString(v, "DATA_STOCK", "stock.json"),
			Precios:          getString(v, "DATA_PRECIOS", "precios.json"),
			HistorialVentas:  getString(v, "DATA_HISTORIAL_VENTAS", "historial_ventas.json"),
			VentasRealizadas: getString(v, "DATA_VENTAS_REALIZADAS", "ventas_realizadas.json"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", "tienda.log"),
		},
		Ventas: VentasConfig{
			PorPagina: getInt(v, "VENTAS_POR_PAGINA", 3),
		},
	}

	if cfg.Ventas.PorPagina < 1 {
		cfg.Ventas.PorPagina = 3
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
