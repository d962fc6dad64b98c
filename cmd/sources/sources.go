// Package sources implements the sources command, which lists the
// configured feeds.
package sources

import (
	"github.com/spf13/cobra"

	"github.com/jonesrussell/north-cloud/techintel/cmd/common"
	"github.com/jonesrussell/north-cloud/techintel/internal/export"
)

// Command creates the sources command.
func Command(load common.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured feed sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}

			export.NewTableRenderer(cmd.OutOrStdout()).RenderSources(deps.Config.Sources)
			return nil
		},
	}
}
