package cmd

import (
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/apriori/converters"
)

// envPrefix scopes environment overrides: --max-size is APRIORI_MAX_SIZE.
const envPrefix = "APRIORI"

// errInvalidConfig marks a configuration value the miner cannot run with.
var errInvalidConfig = errors.New("invalid configuration")

// Config is the effective configuration of a mine run.
// Precedence: flag > APRIORI_* env > --config file > default.
type Config struct {
	Input       string `mapstructure:"input"`
	InputFormat string `mapstructure:"input-format"`
	Delimiter   string `mapstructure:"delimiter"`
	Support     int    `mapstructure:"support"`
	Workers     int    `mapstructure:"workers"`
	MaxSize     int    `mapstructure:"max-size"`
	Format      string `mapstructure:"format"`
	Top         int    `mapstructure:"top"`

	LogConfig `mapstructure:",squash"`
}

// addConfigFlags registers every Config key on fs with its default.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML file with defaults for any flag below")
	fs.StringP("input", "i", "-", "transaction file, - for stdin")
	fs.String("input-format", "basket", "input format: basket or yaml")
	fs.String("delimiter", ",", "item separator of basket input")
	fs.IntP("support", "s", 1, "minimum number of transactions an itemset must appear in")
	fs.IntP("workers", "w", 1, "goroutines used to count support")
	fs.Int("max-size", 0, "largest itemset size to mine, 0 for no limit")
	fs.StringP("format", "f", "text", "output format: text, json or yaml")
	fs.Int("top", 0, "print only the k most frequent itemsets, 0 for all")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-encoder", "console", "log encoder: console or json")
}

// loadConfig merges flags, environment and the optional config file.
//
// Steps:
//  1. Bind the command's flags; unchanged flags act as defaults.
//  2. Read APRIORI_* variables, dashes mapped to underscores.
//  3. Read --config if given.
//  4. Decode and validate.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	// 1. Flags.
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	// 2. Environment.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// 3. File.
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	// 4. Decode.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch {
	case c.Support < 1:
		return errors.Wrapf(errInvalidConfig, "support must be ≥ 1, got %d", c.Support)
	case c.Workers < 1:
		return errors.Wrapf(errInvalidConfig, "workers must be ≥ 1, got %d", c.Workers)
	case c.MaxSize < 0:
		return errors.Wrapf(errInvalidConfig, "max-size must be ≥ 0, got %d", c.MaxSize)
	case c.Top < 0:
		return errors.Wrapf(errInvalidConfig, "top must be ≥ 0, got %d", c.Top)
	case utf8.RuneCountInString(c.Delimiter) != 1 || strings.ContainsAny(c.Delimiter, "\"#\r\n"):
		return errors.Wrapf(errInvalidConfig, "delimiter must be one character other than quote or '#', got %q", c.Delimiter)
	}
	if c.InputFormat != "basket" && c.InputFormat != "yaml" {
		return errors.Wrapf(converters.ErrUnknownFormat, "input-format %q", c.InputFormat)
	}
	if _, err := converters.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// fields flattens the config into logger key/value pairs.
func (c *Config) fields() []any {
	m := map[string]any{}
	if err := mapstructure.Decode(*c, &m); err != nil {
		return nil
	}
	kv := make([]any, 0, 2*len(m))
	for k, val := range m {
		kv = append(kv, k, val)
	}

	return kv
}
