package cli

import (
	"github.com/spf13/cobra"
	"github.com/tsmm-dev/tsmm/internal/registry"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <module>",
	Short: "uninstalls module",
	Long:  `Remove an installed module's directory and its manifest entry.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return registry.UsageError("uninstall [module]")
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	return reg.Uninstall(cmd.Context(), args[0])
}
