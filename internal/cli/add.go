package cli

import (
	"github.com/spf13/cobra"

	"github.com/clarion-labs/clarion/internal/manifest"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <category> <fileName>",
	Short: "Add a style file and import it in the manifest",
	Long: `Create an empty style file in a category directory and append its
import to the root manifest. The category may be abbreviated: "elem"
resolves to "elements". The file extension is taken from the format flags
or from the files already in the project.`,
	Example: `  clarion add components button
  clarion add util spacing --less`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		synchronizer := manifest.New(fsys, opts.Dir, opts.Convention)
		newRenderer(cmd, opts).Render(synchronizer.Add(args[0], args[1], opts.Format))
		return nil
	},
}
