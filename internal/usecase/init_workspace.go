package usecase

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/ports"
)

// InitWorkspace writes the default nodesort.yaml (and a sample link file) into a directory.
type InitWorkspace struct {
	init ports.WorkspaceInitializer
}

func NewInitWorkspace(init ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{init: init}
}

// Execute returns the absolute workspace root that was initialized.
func (uc *InitWorkspace) Execute(root string, force bool) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}

	if err := uc.init.Init(domain.WorkspaceSpec{Root: abs}, force); err != nil {
		return "", err
	}
	return abs, nil
}
