package tui

import (
	"errors"
	"strings"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// userMessage maps an error to a short status line.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "linkfile") {
				return "Link file not found"
			}
			return "Not found"
		case domain.KindInvalidPermutation:
			return "Move rejected (list changed?)"
		case domain.KindInvalidConfig:
			return "Invalid config"
		case domain.KindExecution:
			if strings.Contains(oe.Op, "linkfile.write") || strings.Contains(oe.Op, "linkfile.rename") {
				return "Could not save links"
			}
			return "Unexpected error (see logs)"
		}
	}
	return "Unexpected error (see logs)"
}
