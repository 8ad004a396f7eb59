package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list all installed modules",
	Long:  `List the modules recorded in the manifest under the current project's name.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	return reg.List(cmd.Context())
}
