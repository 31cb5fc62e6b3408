package config

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config/internal"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config/internal/validate"
	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	path []string
}

const separator = "."

// Prm groups required parameters of the Config.
type Prm struct{}

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it. Unknown
// fields in the file are rejected.
// Otherwise, Config is a degenerate tree.
// Values are overridden by VFSACL_<SECTION>_<NAME> environment variables.
func New(_ Prm, opts ...Option) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(internal.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, internal.EnvSeparator))

	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	if o.path != "" {
		v.SetFs(o.fs)
		v.SetConfigFile(o.path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		err = validate.ValidateStruct(v)
		if err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", o.path, err)
		}
	}

	return &Config{
		v: v,
	}, nil
}

// Sub returns subsection of the Config by name.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path[:len(x.path):len(x.path)], name),
	}
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. StringSafe).
// Note: casting via Go `.()` operator is not
// recommended.
func (x *Config) Value(name string) any {
	return x.v.Get(strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator))
}

// IsSet checks whether the value is set in the file or environment.
func (x *Config) IsSet(name string) bool {
	return x.v.IsSet(strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator))
}

// Used returns the path of the config file read, empty if none.
func (x *Config) Used() string {
	return x.v.ConfigFileUsed()
}
