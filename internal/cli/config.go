package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/draftmsg/draftmsg/internal/config"
	"github.com/draftmsg/draftmsg/internal/gitctx"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage draftmsg configuration",
}

const defaultConfigFile = `# draftmsg configuration
format: text
no_color: false

# Extra trigger keywords, appended to the built-in table. Categories must be
# one of: security, features, fixes, refactors, performance, components,
# dependencies, scripts.
#keywords:
#  security:
#    - oauth
#  components:
#    - billing
`

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .draftmsg.yaml in the repo root",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if repo, err := gitctx.Open("."); err == nil {
			dir = repo.Root()
		}
		path := filepath.Join(dir, config.FileName+".yaml")

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Config file already exists at %s\n", path)
			return nil
		}

		if err := os.WriteFile(path, []byte(defaultConfigFile), 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintf(os.Stdout, "Config file created at %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		var repoRoot string
		if repo, err := gitctx.Open("."); err == nil {
			repoRoot = repo.Root()
		}

		cfg, err := config.Load(repoRoot, nil)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprint(os.Stdout, string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
