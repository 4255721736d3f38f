package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/nodesort/internal/infra/linkfile"
	"github.com/aalvaropc/nodesort/internal/infra/logger"
	"github.com/aalvaropc/nodesort/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	workspace string
	debug     bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "nodesort [file]",
		Short:        "nodesort: classify and order proxy links by remark",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// The interactive view always logs to the workspace log file.
			if !g.debug && c.Name() != "nodesort" {
				return nil
			}
			root, _, err := resolveWorkspaceRoot(g.workspace)
			if err != nil {
				root = "."
			}
			cleanup, _ = logger.Setup(logger.Config{Root: root, Debug: g.debug})
			if err := logger.IsReady(); err != nil && g.debug {
				fmt.Fprintf(c.ErrOrStderr(), "warning: debug logging disabled: %v\n", err)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g.workspace, c.InOrStdin(), c.OutOrStdout())
			if err != nil {
				return err
			}

			path := resolveLinksPath(args)
			if path == linkfile.StdioPath {
				path = filepath.Join(ws.root, "nodes.txt")
			}
			if !fileExists(path) {
				return errors.New("link file not found: " + path + " (tip: run `nodesort init` or pass a file)")
			}

			return tui.Run(tui.Deps{
				Store:      ws.store,
				Classifier: ws.classifier,
				Sorter:     ws.comparator,
				Path:       path,
				PreviewLen: ws.cfg.PreviewLength,
				Logger:     logger.L(),
				LogPath:    logger.Path(),
				Debug:      g.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .nodesort/logs/nodesort.log")

	cmd.AddCommand(
		classifyCmd(&g),
		sortCmd(&g),
		reorderCmd(&g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
