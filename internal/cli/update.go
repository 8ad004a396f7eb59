package cli

import (
	"github.com/spf13/cobra"
	"github.com/tsmm-dev/tsmm/internal/registry"
)

var updateCmd = &cobra.Command{
	Use:   "update <module>",
	Short: "update module",
	Long:  `Re-clone an installed module from its recorded repository and replace its directory.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return registry.UsageError("update [module]")
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	return reg.Update(cmd.Context(), args[0])
}
