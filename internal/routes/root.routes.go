package routes

import (
	"diskusage/internal/config"
	"diskusage/internal/controllers"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the disk-usage command tree
func NewRootCommand(version string, newSource controllers.SourceFactory) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "disk-usage",
		Short:         "A disk usage visualization tool with better output than df -h",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := RegisterReportRoutes(root, config.New(), newSource); err != nil {
		return nil, err
	}
	RegisterVersionRoutes(root, version)

	return root, nil
}
