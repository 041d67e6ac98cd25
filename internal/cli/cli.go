package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/optiongraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("optiongraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
optiongraph - resolves which options of a decision catalog are enabled,
disabled or visible for a given selection.

Usage:
  optiongraph [options] [CATALOG_PATH]

Arguments:
  CATALOG_PATH
    Path to a .hcl/.yaml file or a directory of them. The builtin catalog
    is used when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", "", "Path to the catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog file or directory (shorthand).")
	toggleFlag := flagSet.String("toggle", "", "Comma-separated node ids to toggle, applied in order.")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strictFlag := flagSet.Bool("strict", false, "Reject activation or requirement cycles and selections with no consistent resolution.")
	searchLimitFlag := flagSet.Int("search-limit", 0, "Candidate sets examined per resolution pass. 0 selects the default.")
	portFlag := flagSet.Int("port", 0, "Port for the HTTP server. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *catalogFlag != "" {
		path = *catalogFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	flagged := *catalogFlag != "" || *cFlag != ""
	if flagSet.NArg() > 1 || (flagged && flagSet.NArg() > 0) {
		return nil, false, &ExitError{Code: 2, Message: "at most one catalog path may be given"}
	}
	slog.Debug("Catalog path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CatalogPath: path,
		Toggles:     splitIDs(*toggleFlag),
		Output:      strings.ToLower(*outputFlag),
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Strict:      *strictFlag,
		SearchLimit: *searchLimitFlag,
		Port:        *portFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
