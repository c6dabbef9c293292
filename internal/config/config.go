package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config contiene toda la configuración del servicio. Se arma una vez al
// arranque desde el entorno y después se comparte solo para lectura.
type Config struct {
	// GeminiAPIKey habilita la generación de reviews. Sin ella el servicio
	// arranca igual, en modo degradado.
	GeminiAPIKey string

	// Credenciales de proveedores, todas opcionales. Sin ellas las llamadas
	// salen sin autenticar, sujetas a rate limits más estrictos.
	GitHubToken          string
	GitLabToken          string
	BitbucketUsername    string
	BitbucketAppPassword string

	// Bindings del listener HTTP.
	Host  string
	Port  int
	Debug bool

	// Language selecciona el idioma de los mensajes de la CLI y los logs.
	Language string
}

const (
	defaultHost = "0.0.0.0"
	defaultPort = 5000
	defaultLang = "en"
)

// FromEnv construye la configuración desde las variables de entorno.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GitHubToken:          os.Getenv("GITHUB_TOKEN"),
		GitLabToken:          os.Getenv("GITLAB_TOKEN"),
		BitbucketUsername:    os.Getenv("BITBUCKET_USERNAME"),
		BitbucketAppPassword: os.Getenv("BITBUCKET_APP_PASSWORD"),
		Host:                 defaultHost,
		Port:                 defaultPort,
		Debug:                strings.EqualFold(os.Getenv("DEBUG"), "true"),
		Language:             defaultLang,
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Host = host
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("PORT inválido %q: %w", port, err)
		}
		cfg.Port = p
	}

	if lang := os.Getenv("LANGUAGE"); lang != "" {
		cfg.Language = lang
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate chequea los invariantes de la configuración.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("puerto fuera de rango: %d", c.Port)
	}
	if c.Host == "" {
		return errors.New("host no puede estar vacío")
	}
	if c.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	return nil
}

// Addr retorna la dirección de escucha del listener HTTP.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AIEnabled indica si la generación de reviews está configurada.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}
