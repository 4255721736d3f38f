package ports

import "github.com/aalvaropc/nodesort/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
