package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/nodesort/internal/usecase"
)

func classifyCmd(g *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify links by remark (reads stdin when no file or - is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(g.workspace, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if format == "" {
				format = string(ws.cfg.Output)
			}

			uc := usecase.NewClassifyLinks(ws.store, ws.classifier, ws.opts()...)
			list, err := uc.Execute(cmd.Context(), resolveLinksPath(args))
			if err != nil {
				return err
			}
			return printList(cmd.OutOrStdout(), list, format, ws.cfg.PreviewLength)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json|yaml|links (default from nodesort.yaml)")
	return c
}
