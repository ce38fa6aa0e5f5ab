package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ochoFile = "ochoxocho.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.ochoxocho/configs/ochoxocho.yaml ->
// ./configs/ochoxocho.yaml -> embedded default -> DefaultOchoConfig.
// Only a custom path is required to exist and parse; the others are skipped
// when missing or invalid. Fields absent from the file keep their defaults.
func Load(customPath string) (OchoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OchoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return OchoConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := userConfigPath(ochoFile); path != "" {
		if cfg, ok := tryFile(path); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", ochoFile)); ok {
		return cfg, nil
	}

	if cfg, err := parse(defaultOchoYAML); err == nil {
		return cfg, nil
	}
	return DefaultOchoConfig(), nil
}

func tryFile(path string) (OchoConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OchoConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil {
		return OchoConfig{}, false
	}
	return cfg, true
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (OchoConfig, error) {
	cfg := DefaultOchoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OchoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return OchoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ochoxocho", "configs", filename)
}
