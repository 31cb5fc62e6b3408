package common

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// Persistent flags of the vfsacl command tree.
const (
	ConfigFlag          = "config"
	ConfigFlagShorthand = "c"
	ConfigFlagUsage     = "Config file"

	BrandFlag      = "brand"
	BrandFlagUsage = "ACL brand of the objects (none, posix, nfs41), overrides config"

	MetricsFlag      = "metrics-textfile"
	MetricsFlagUsage = "Write operation metrics to the file in the Prometheus text format"
)

const defaultConfigPath = "~/.config/vfsacl/config.yaml"

// DefaultConfigPath returns the config path used when ConfigFlag is not
// specified.
func DefaultConfigPath() string {
	p, err := homedir.Expand(defaultConfigPath)
	if err != nil {
		return ""
	}
	return p
}

// AddPersistentFlags registers flags shared by all commands.
func AddPersistentFlags(ff *pflag.FlagSet) {
	ff.StringP(ConfigFlag, ConfigFlagShorthand, DefaultConfigPath(), ConfigFlagUsage)
	ff.String(BrandFlag, "", BrandFlagUsage)
	ff.String(MetricsFlag, "", MetricsFlagUsage)
}
