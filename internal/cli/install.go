package cli

import (
	"github.com/spf13/cobra"
	"github.com/tsmm-dev/tsmm/internal/registry"
)

var installCmd = &cobra.Command{
	Use:   "install <repository>",
	Short: "installs module from given repository",
	Long: `Clone a git repository, register the module named by its package.json,
and move the repository's src/ tree into <source>/<name>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return registry.UsageError("install <repository>")
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	return reg.Install(cmd.Context(), args[0])
}
