package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the formcheck command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate form values against a YAML form definition",
		Long: `formcheck builds fieldsets from YAML form definitions.

"check" submits a values file once and prints the resulting errors as YAML;
the exit code is 1 when the form is invalid. "serve" exposes the same
validation over HTTP.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	root.AddCommand(newCheckCmd(), newServeCmd())
	return root
}
