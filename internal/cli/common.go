package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/kvstore"
	"github.com/rshade/footprint/internal/store"
)

// Output formats accepted by --output.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// openStore opens the activity store in the configured data directory.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir := config.GetGlobalConfig().DataDir()

	kv, err := kvstore.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening data directory %s: %w", dir, err)
	}

	logger.Debug().Ctx(cmd.Context()).Str("data_dir", dir).Msg("opening store")

	st, err := store.Open(cmd.Context(), kv)
	if err != nil {
		return nil, fmt.Errorf("loading saved data: %w", err)
	}
	return st, nil
}

// resolveOutputFormat returns flagValue, or the configured default when the
// flag is empty, after checking it against allowed.
func resolveOutputFormat(flagValue string, allowed ...string) (string, error) {
	format := flagValue
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	if !slices.Contains(allowed, format) {
		// A configured ndjson default falls back for commands without it.
		if flagValue == "" {
			return allowed[0], nil
		}
		return "", fmt.Errorf("unsupported output format %q (use %s)", format, strings.Join(allowed, ", "))
	}
	return format, nil
}
