// Command netcalc reads a line-oriented IP set-operation script and prints
// the canonical, minimal list of CIDR prefixes covering the resulting set.
// The WebAssembly counterpart lives in cmd/netcalc-wasm.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	netcalc "github.com/shouya/netcalc"
	"github.com/shouya/netcalc/internal/config"
	"github.com/shouya/netcalc/pkg/netcalclog"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "netcalc",
		Short: "Fold a script of IP add/delete operations into a minimal CIDR list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve(v)
			if len(args) > 0 {
				cfg.InputPath = args[0]
			}
			return run(cmd, cfg)
		},
		SilenceUsage: true,
	}

	config.BindFlags(cmd.Flags(), v)
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	if err := netcalclog.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	scriptText, err := readScript(cfg.InputPath)
	if err != nil {
		netcalclog.WithError(err).Error("failed to read script")
		return err
	}

	out, err := netcalc.Convert(cfg.Version, cfg.Separator, scriptText)
	if err != nil {
		netcalclog.WithError(err).
			WithField("version", cfg.Version).
			Error("convert failed")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func readScript(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
