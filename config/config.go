package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigWordList    = "word-list"
	ConfigWordListDir = "word-list-dir"
	ConfigMinLength   = "min-length"
	ConfigUnique      = "unique"
	ConfigSort        = "sort"
	ConfigFormat      = "format"
	ConfigNatsURL     = "nats-url"
	ConfigNatsSubject = "nats-subject"
	ConfigRemote      = "remote"
	ConfigCPUProfile  = "cpu-profile"
)

// Config wraps a viper instance. Values come from (in order of precedence)
// command-line flags, WORDSEARCH_* environment variables, then defaults.
type Config struct {
	viper.Viper
	args []string
}

// DefaultConfig returns a config with only the defaults loaded.
func DefaultConfig() *Config {
	c := &Config{}
	// Cannot fail with no arguments.
	_ = c.Load(nil)
	return c
}

func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()

	fs := pflag.NewFlagSet("wordsearch", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigWordList, "", "path to a word list, one word per line (built-in list if empty)")
	fs.String(ConfigWordListDir, "", "directory of word lists that bot requests may name (none if empty)")
	fs.Int(ConfigMinLength, 1, "do not report words shorter than this")
	fs.Bool(ConfigUnique, false, "report each spelling once, even if several paths spell it")
	fs.String(ConfigSort, "alpha", "output order: none, alpha, length or score")
	fs.String(ConfigFormat, "text", "output format: text, yaml or json")
	fs.String(ConfigNatsURL, "nats://127.0.0.1:4222", "NATS server for the solver bot")
	fs.String(ConfigNatsSubject, "wordsearch.solve", "subject the solver bot listens on")
	fs.Bool(ConfigRemote, false, "send the board to a solver bot over NATS instead of solving locally")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("wordsearch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	return c.BindPFlags(fs)
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	for k := range settings {
		if strings.Contains(k, "token") || strings.Contains(k, "password") {
			settings[k] = "<redacted>"
		}
	}
	return settings
}
