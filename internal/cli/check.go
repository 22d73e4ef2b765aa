package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/confit-dev/confit/internal/app"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <package-dir>",
	Short: "Inspect a package without writing anything",
	Long: `Check reports what rendering the package would do: the render
decision, the loaded properties, and a dry-run expansion of every
template. Nothing is written.

Unlike rendering, check does not stop at the first broken template, so
a single run surfaces every expansion error.

Examples:
  confit check ./packages/front
  confit check ./packages/front --keys`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// Check command flags
var checkShowKeys bool

func init() {
	checkCmd.Flags().BoolVar(&checkShowKeys, FlagKeys, false, DescKeys)
}

func runCheck(cmd *cobra.Command, args []string) error {
	result, err := app.Check(cmd.Context(), app.CheckOptions{PackagePath: args[0]})
	if err != nil {
		return err
	}

	printHeader(result.Package)

	switch {
	case result.PropertiesPresent:
		printInfo(fmt.Sprintf("properties: %d keys", len(result.PropertyKeys)))
	case result.PropertiesDegraded:
		printWarning("properties: malformed, ignored")
	default:
		printInfo("properties: none")
	}

	if checkShowKeys {
		for _, key := range result.PropertyKeys {
			printInfo("  " + key)
		}
	}

	printInfo("state: " + result.State)

	for _, tpl := range result.Templates {
		if tpl.Error != "" {
			printErrorMsg(tpl.Error)
			continue
		}
		action := "create"
		if tpl.OutputExists {
			action = "overwrite"
		}
		printProgress(fmt.Sprintf("%s would %s %s", tpl.Name, action, filepath.Base(tpl.OutputPath)))
	}

	if result.TemplatesWithErrors > 0 {
		return fmt.Errorf("%d of %d templates failed to expand", result.TemplatesWithErrors, len(result.Templates))
	}
	if result.State == app.StateMissingProperties {
		return fmt.Errorf("package %s has templates but no properties document", result.Package)
	}

	printSuccess("package is ready")
	return nil
}
