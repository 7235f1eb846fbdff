// Command artcli is the menu-driven harness spec.md places out of scope
// for the core engine: load, add/delete, exact and LPM lookup,
// table dump, and a validation pass, all operating on one in-memory
// art.Table. It mirrors the operations the original C's lkupTest.c menu
// exposed, reshaped into a cobra subcommand tree plus an interactive
// shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hariguchi/art/internal/config"
	"github.com/hariguchi/art/internal/logctx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var profile string
	var compressed bool

	root := &cobra.Command{
		Use:   "artcli",
		Short: "Allotment Routing Table command-line harness",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML profile (optional)")
	root.PersistentFlags().StringVar(&profile, "profile", "ipv4", "built-in profile when --config is absent: ipv4 or ipv6")
	root.PersistentFlags().BoolVar(&compressed, "compressed", false, "use the path-compressed trie")

	session := &cliSession{}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgPath, profile, compressed)
		if err != nil {
			return err
		}
		log, err := logctx.New(cfg.Logger)
		if err != nil {
			return err
		}
		session.cfg = cfg
		session.log = log
		return session.openTable()
	}

	root.AddCommand(
		newLoadCmd(session),
		newInsertCmd(session),
		newDeleteCmd(session),
		newLookupCmd(session),
		newExactCmd(session),
		newDumpCmd(session),
		newValidateCmd(session),
		newShellCmd(session),
	)
	return root
}

func loadConfig(path, profile string, compressed bool) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg := &config.Config{
		Logger: config.LoggerConfig{Active: true, Level: "info", Encoding: "console", Mode: "stdout"},
	}
	switch profile {
	case "ipv6":
		cfg.Table = config.DefaultIPv6()
	default:
		cfg.Table = config.DefaultIPv4()
	}
	cfg.Table.Compressed = compressed
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
