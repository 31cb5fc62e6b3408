package validate

import "time"

type valideConfig struct {
	Logger struct {
		Level     string `mapstructure:"level"`
		Encoding  string `mapstructure:"encoding"`
		Timestamp bool   `mapstructure:"timestamp"`
	} `mapstructure:"logger"`

	Store struct {
		Type string `mapstructure:"type"`
		Bolt struct {
			Path        string        `mapstructure:"path"`
			Perm        uint32        `mapstructure:"perm"`
			LockTimeout time.Duration `mapstructure:"lock_timeout"`
		} `mapstructure:"bolt"`
	} `mapstructure:"store"`

	ACL struct {
		Brand string `mapstructure:"brand"`
	} `mapstructure:"acl"`
}
