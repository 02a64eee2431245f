package routes

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RegisterVersionRoutes adds the version subcommand
func RegisterVersionRoutes(root *cobra.Command, version string) {
	root.Version = version
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", root.Name(), version)
		},
	})
}
