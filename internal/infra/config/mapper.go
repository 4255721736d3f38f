package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// MapConfig applies yc on top of domain.DefaultConfig and validates the result.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	ns := yc.NodeSort

	if s := strings.TrimSpace(ns.Locale); s != "" {
		if _, err := language.Parse(s); err != nil {
			return domain.Config{}, invalidField(path, "locale", fmt.Sprintf("%q is not a BCP 47 tag", s))
		}
		cfg.Locale = s
	}

	if ns.PreviewLength != nil {
		if *ns.PreviewLength < 0 {
			return domain.Config{}, invalidField(path, "preview_length", "must be >= 0")
		}
		cfg.PreviewLength = *ns.PreviewLength
	}

	if s := strings.TrimSpace(ns.SSDefaultRemark); s != "" {
		cfg.SSDefaultRemark = s
	}

	if s := strings.TrimSpace(ns.Output); s != "" {
		out, err := parseOutput(s)
		if err != nil {
			return domain.Config{}, invalidField(path, "output", err.Error())
		}
		cfg.Output = out
	}

	return cfg, nil
}

func parseOutput(s string) (domain.OutputFormat, error) {
	low := strings.ToLower(strings.TrimSpace(s))
	switch domain.OutputFormat(low) {
	case domain.OutputPretty, domain.OutputJSON, domain.OutputYAML:
		return domain.OutputFormat(low), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", s)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
