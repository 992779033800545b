// Package config binds netcalc's CLI flags and environment variables into
// a single Config value, shared by cmd/netcalc.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for a single netcalc invocation.
type Config struct {
	// Version selects the address family: "4" or "6".
	Version string
	// Separator is placed between emitted CIDRs.
	Separator string
	// InputPath is the script source; "" or "-" means read from stdin.
	InputPath string
	// LogLevel is one of trace/debug/info/warn/error.
	LogLevel string
}

// Defaults returns the Config netcalc falls back to when neither a flag
// nor an environment variable sets a field.
func Defaults() Config {
	return Config{
		Version:   "4",
		Separator: "\n",
		InputPath: "-",
		LogLevel:  "info",
	}
}

// BindFlags registers netcalc's flags on fs and binds them, plus their
// NETCALC_-prefixed environment variable counterparts, into v. Call
// Resolve(v) after fs.Parse to get the final Config.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	d := Defaults()

	fs.StringP("version", "v", d.Version, `IP version to operate on: "4" or "6"`)
	fs.BoolP("ipv4", "4", false, "shorthand for --version=4")
	fs.BoolP("ipv6", "6", false, "shorthand for --version=6")
	fs.String("separator", d.Separator, "string placed between emitted CIDRs")
	fs.StringP("input", "i", d.InputPath, `script path, or "-" to read from stdin`)
	fs.String("log-level", d.LogLevel, "log level: trace, debug, info, warn, error")

	v.SetEnvPrefix("NETCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlag("version", fs.Lookup("version"))
	_ = v.BindPFlag("ipv4", fs.Lookup("ipv4"))
	_ = v.BindPFlag("ipv6", fs.Lookup("ipv6"))
	_ = v.BindPFlag("separator", fs.Lookup("separator"))
	_ = v.BindPFlag("input", fs.Lookup("input"))
	_ = v.BindPFlag("log-level", fs.Lookup("log-level"))
}

// Resolve reads the bound flag/env values out of v into a Config. The
// -6/-4 shorthand flags take precedence over --version when set, with -6
// winning if both are given.
func Resolve(v *viper.Viper) Config {
	version := v.GetString("version")
	if v.GetBool("ipv4") {
		version = "4"
	}
	if v.GetBool("ipv6") {
		version = "6"
	}

	return Config{
		Version:   version,
		Separator: v.GetString("separator"),
		InputPath: v.GetString("input"),
		LogLevel:  v.GetString("log-level"),
	}
}
