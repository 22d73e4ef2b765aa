package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagProperties = "properties"
	FlagKeys       = "keys"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"
	FlagDebug      = "debug"
	FlagLogJSON    = "log-json"

	// Flag descriptions
	DescProperties = "JSON object to merge into the package's properties.yml (switches to merge-only mode)"
	DescKeys       = "List the flattened property keys"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
	DescDebug      = "Enable debug logging"
	DescLogJSON    = "Emit diagnostics as JSON"
)
