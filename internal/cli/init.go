package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/ttop/internal/config"
	"github.com/rileyhilliard/ttop/internal/errors"
	"github.com/rileyhilliard/ttop/internal/ui"
)

var initForce bool

// initCmd writes the default config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	Long: `Write a config file with the default display settings.

The file goes to ~/.config/ttop/config.yaml unless --config points
elsewhere. Only display preferences live there; the sampling interval
is fixed.

Examples:
  ttop init
  ttop init --force
  ttop init --config ./ttop.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(configFlag, initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
}

func initCommand(explicit string, force bool) error {
	path := explicit
	if path == "" {
		var err error
		path, err = config.GlobalPath()
		if err != nil {
			return err
		}
	}

	if force {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot replace existing config file",
				"Check permissions on "+path)
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, path)
	return nil
}
