package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/infra/linkfile"
	"github.com/aalvaropc/nodesort/internal/usecase"
)

var errWriteStdin = errors.New("--write needs a file argument, not stdin")

func sortCmd(g *globalFlags) *cobra.Command {
	var format string
	var write bool

	c := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort links: ruled first (flag, sid, sn, tier, region, country), then unruled, then invalid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveLinksPath(args)
			if write && path == linkfile.StdioPath {
				return errWriteStdin
			}

			ws, err := loadWorkspace(g.workspace, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			uc := usecase.NewSortLinks(ws.store, ws.classifier, ws.comparator, ws.opts()...)
			list, err := uc.Execute(cmd.Context(), path, write)
			if err != nil {
				return err
			}
			return reportOrdered(cmd, list, path, write, format, ws.cfg.PreviewLength)
		},
	}

	c.Flags().StringVar(&format, "format", formatLinks, "Output format: links|pretty|json|yaml")
	c.Flags().BoolVar(&write, "write", false, "Write the sorted links back to the file")
	return c
}

// reportOrdered prints the list, or a one-line summary when it was written back.
func reportOrdered(cmd *cobra.Command, list domain.NodeList, path string, written bool, format string, previewLen int) error {
	if written && format == formatLinks {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d links to %s\n", len(list.Items), path)
		return nil
	}
	return printList(cmd.OutOrStdout(), list, format, previewLen)
}
