package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// Load reads a nodesort.yaml file and maps it onto the defaults.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// LoadOrDefault is Load with a missing file meaning "use defaults".
func LoadOrDefault(path string) (domain.Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindNotFound && errors.Is(oe.Err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return domain.Config{}, err
}
