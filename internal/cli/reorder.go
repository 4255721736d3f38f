package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/nodesort/internal/infra/linkfile"
	"github.com/aalvaropc/nodesort/internal/usecase"
)

func reorderCmd(g *globalFlags) *cobra.Command {
	var ids []int
	var format string
	var write bool

	c := &cobra.Command{
		Use:   "reorder [file]",
		Short: "Reorder links by an explicit id permutation (ids as shown by classify)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ids) == 0 {
				return errors.New("--order is required (e.g. --order 2,0,1)")
			}
			path := resolveLinksPath(args)
			if write && path == linkfile.StdioPath {
				return errWriteStdin
			}

			ws, err := loadWorkspace(g.workspace, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			uc := usecase.NewReorderLinks(ws.store, ws.classifier, ws.opts()...)
			list, err := uc.Execute(cmd.Context(), path, ids, write)
			if err != nil {
				return err
			}
			return reportOrdered(cmd, list, path, write, format, ws.cfg.PreviewLength)
		},
	}

	c.Flags().IntSliceVar(&ids, "order", nil, "Comma-separated item ids in the new order (required)")
	c.Flags().StringVar(&format, "format", formatLinks, "Output format: links|pretty|json|yaml")
	c.Flags().BoolVar(&write, "write", false, "Write the reordered links back to the file")
	return c
}
