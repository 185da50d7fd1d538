package cli

import (
	"github.com/spf13/cobra"

	"github.com/clarion-labs/clarion/internal/installer"
	"github.com/clarion-labs/clarion/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [projectName]",
	Short: "Create a new project with a style architecture",
	Long: `Create a new project: script directories, the bundler configuration,
package.json, a starter index.html and the style architecture with its
root manifest.

With --only, only the style architecture is created, in the current
directory.`,
	Example: `  clarion init my-site
  clarion init my-site --less --parcel
  clarion init --only --sass`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			opts = opts.WithProjectName(args[0])
		}

		gen := scaffold.NewGenerator(fsys, installer.Dispatch(installer.ManagerNpm))
		newRenderer(cmd, opts).Render(gen.Generate(cmd.Context(), opts))
		return nil
	},
}
