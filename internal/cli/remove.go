package cli

import (
	"github.com/spf13/cobra"

	"github.com/clarion-labs/clarion/internal/manifest"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <category> <fileName>",
	Aliases: []string{"rm"},
	Short:   "Remove a style file and its manifest import",
	Long: `Delete a style file from a category directory and remove its import
from the root manifest. The import is removed even when the file itself is
already gone.`,
	Example: `  clarion remove components button`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		synchronizer := manifest.New(fsys, opts.Dir, opts.Convention)
		newRenderer(cmd, opts).Render(synchronizer.Remove(args[0], args[1], opts.Format))
		return nil
	},
}
