package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/clarion-labs/clarion/internal/branding"
	"github.com/clarion-labs/clarion/internal/bundler"
	"github.com/clarion-labs/clarion/internal/config"
	"github.com/clarion-labs/clarion/internal/styles"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDir     string
	flagOnly    bool
	flagEmpty   bool
	flagSCSS    bool
	flagSass    bool
	flagLess    bool
	flagWebpack bool
	flagGulp    bool
	flagGrunt   bool
	flagParcel  bool
	flagInstall bool
	flagVerbose bool
)

// fsys is the filesystem every command works on.
var fsys afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a front-end project around a categorized style-sheet
architecture and keeps the root styles manifest in sync as style files are
added and removed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDir, "dir", ".", "Directory to run in")
	pf.BoolVarP(&flagOnly, "only", "O", false, "Generate the style architecture only")
	pf.BoolVarP(&flagEmpty, "empty", "E", false, "Skip starter content")
	pf.BoolVarP(&flagSCSS, "scss", "C", false, "Use .scss files (default)")
	pf.BoolVarP(&flagSass, "sass", "A", false, "Use .sass files")
	pf.BoolVarP(&flagLess, "less", "L", false, "Use .less files")
	pf.BoolVarP(&flagWebpack, "webpack", "W", false, "Configure webpack (default)")
	pf.BoolVarP(&flagGulp, "gulp", "U", false, "Configure gulp")
	pf.BoolVarP(&flagGrunt, "grunt", "R", false, "Configure grunt")
	pf.BoolVarP(&flagParcel, "parcel", "P", false, "Configure parcel")
	pf.BoolVar(&flagInstall, "install", false, "Run npm install after init")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Show debug output")

	rootCmd.MarkFlagsMutuallyExclusive("scss", "sass", "less")
	rootCmd.MarkFlagsMutuallyExclusive(bundler.Webpack, bundler.Gulp, bundler.Grunt, bundler.Parcel)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// commandFlags collects the persistent flag values of this invocation.
func commandFlags() config.Flags {
	f := config.Flags{
		Dir:     flagDir,
		Only:    flagOnly,
		Empty:   flagEmpty,
		Format:  styles.Flags{Sass: flagSass, SCSS: flagSCSS, Less: flagLess},
		Install: flagInstall,
		Verbose: flagVerbose,
	}
	switch {
	case flagWebpack:
		f.Bundler = bundler.Webpack
	case flagGulp:
		f.Bundler = bundler.Gulp
	case flagGrunt:
		f.Bundler = bundler.Grunt
	case flagParcel:
		f.Bundler = bundler.Parcel
	}
	return f
}

// loadOptions reads user settings and resolves this invocation's options.
func loadOptions() (config.Options, error) {
	config.Load()
	opts, err := config.Resolve(commandFlags())
	if err != nil {
		return config.Options{}, fmt.Errorf("loading configuration from %s: %w", config.FilePath(), err)
	}
	return opts, nil
}

// newRenderer returns a renderer writing to the command output.
func newRenderer(cmd *cobra.Command, opts config.Options) *Renderer {
	return NewRenderer(cmd.OutOrStdout(), opts.Verbose)
}
