package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/infra/config"
	"github.com/aalvaropc/nodesort/internal/infra/linkfile"
	"github.com/aalvaropc/nodesort/internal/infra/logger"
	"github.com/aalvaropc/nodesort/internal/infra/workspacefinder"
	"github.com/aalvaropc/nodesort/internal/ports"
	"github.com/aalvaropc/nodesort/internal/usecase"
	"github.com/aalvaropc/nodesort/internal/usecase/classify"
	"github.com/aalvaropc/nodesort/internal/usecase/decode"
	"github.com/aalvaropc/nodesort/internal/usecase/order"
)

var newLocator = func() ports.WorkspaceLocator { return workspacefinder.NewFinder() }

type workspaceCtx struct {
	root string
	cfg  domain.Config

	store      ports.LinkStore
	classifier *classify.Classifier
	comparator *order.Comparator
	log        *slog.Logger
}

// loadWorkspace resolves the workspace root and wires the pipeline from its config.
// Without a nodesort.yaml the current directory and default config are used.
func loadWorkspace(workspaceFlag string, stdin io.Reader, stdout io.Writer) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if found {
		cfg, err = config.LoadOrDefault(filepath.Join(root, workspacefinder.ConfigFile))
		if err != nil {
			return nil, err
		}
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "cli.load_workspace",
			Kind: domain.KindInvalidConfig,
			Path: filepath.Join(root, workspacefinder.ConfigFile),
			Err:  err,
		}
	}

	return &workspaceCtx{
		root:       root,
		cfg:        cfg,
		store:      linkfile.NewStore(linkfile.WithStdio(stdin, stdout)),
		classifier: classify.New(decode.New(decode.WithSSDefaultRemark(cfg.SSDefaultRemark))),
		comparator: order.NewComparator(tag),
		log:        logger.L(),
	}, nil
}

func (ws *workspaceCtx) opts() []usecase.Option {
	return []usecase.Option{usecase.WithLogger(ws.log)}
}

// resolveWorkspaceRoot returns the workspace root and whether a nodesort.yaml marks it.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFile)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root, err := newLocator().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return root, true, nil
}

// resolveLinksPath maps the positional argument to a link file path.
// No argument, or "-", means stdin/stdout.
func resolveLinksPath(args []string) string {
	if len(args) == 0 {
		return linkfile.StdioPath
	}
	p := strings.TrimSpace(args[0])
	if p == "" || p == linkfile.StdioPath {
		return linkfile.StdioPath
	}
	return filepath.Clean(p)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
