package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confit-dev/confit/internal/app"
	"github.com/confit-dev/confit/internal/log"
	"github.com/confit-dev/confit/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalLogJSON bool
)

// Root command flags
var rootProperties string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confit <package-dir>",
	Short: "Render templated package configuration",
	Long: `confit renders declarative configuration templates for a package
directory, using the package's properties.yml as the variable source.

Without flags, every config/*.tmpl in the package is rendered to its
.clj artifact against the loaded properties:

  confit ./packages/front

With --properties, the given JSON object is merged into the package's
properties.yml instead; templates are not touched:

  confit ./packages/front --properties '{"owner":"delivery"}'`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := ""
		if globalDebug {
			level = "debug"
		}
		log.Configure(log.Config{Level: level, JSON: globalLogJSON, NoColor: globalNoColor})
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().BoolVar(&globalLogJSON, FlagLogJSON, false, DescLogJSON)

	rootCmd.Flags().StringVarP(&rootProperties, FlagProperties, "p", "", DescProperties)

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// runRoot dispatches between the two operations: supplying --properties
// switches from merge+render to merge-only.
func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if cmd.Flags().Changed(FlagProperties) {
		if _, err := app.Merge(ctx, app.MergeOptions{PackagePath: args[0], Override: rootProperties}); err != nil {
			return err
		}
	} else {
		if _, err := app.Render(ctx, app.RenderOptions{PackagePath: args[0]}); err != nil {
			return err
		}
	}

	printSuccess("Done")
	return nil
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
