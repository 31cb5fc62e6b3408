package config

import "github.com/spf13/afero"

type opts struct {
	path string
	fs   afero.Fs
}

func defaultOpts() *opts {
	return &opts{
		fs: afero.NewOsFs(),
	}
}

// Option allows to set optional parameter of the Config.
type Option func(*opts)

// WithConfigFile returns an option to set the system path
// to the configuration file.
func WithConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
	}
}

// WithFs returns an option to set the filesystem the configuration
// file is read from. OS filesystem is used by default.
func WithFs(fs afero.Fs) Option {
	return func(o *opts) {
		o.fs = fs
	}
}
