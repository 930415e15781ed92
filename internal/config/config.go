package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Config son los ajustes de la aplicación, independientes del repositorio.
type Config struct {
	Language string `json:"language"`
	Format   string `json:"format"`
	Color    bool   `json:"color"`
	PathFile string `json:"path_file"`
}

const (
	FormatText = "text"
	FormatJSON = "json"

	dirName  = ".matelint"
	fileName = "config.json"

	defaultLang   = LangEN
	defaultFormat = FormatText
	defaultColor  = true
)

// Formats lista los formatos de salida de los reportes.
var Formats = []string{FormatText, FormatJSON}

// LoadConfig lee los ajustes desde path. Si path es un directorio se usa
// path/.matelint/config.json, y el archivo se crea con valores por defecto
// cuando no existe.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		if path == "" {
			return nil, errors.New("el directorio de configuración no está definido")
		}
		configPath = filepath.Join(path, dirName, fileName)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error al verificar el archivo de configuración: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	config := Config{Color: defaultColor}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

// DefaultConfig devuelve los ajustes por defecto sin tocar el disco.
func DefaultConfig() *Config {
	return &Config{
		Language: defaultLang,
		Format:   defaultFormat,
		Color:    defaultColor,
	}
}

func createDefaultConfig(path string) (*Config, error) {
	config := DefaultConfig()
	config.PathFile = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if !slices.Contains(SupportedLanguages, config.Language) {
		return fmt.Errorf("idioma no soportado: %s", config.Language)
	}
	if config.Format == "" {
		config.Format = defaultFormat
	}
	if !slices.Contains(Formats, config.Format) {
		return fmt.Errorf("formato de salida no soportado: %s", config.Format)
	}
	return nil
}
