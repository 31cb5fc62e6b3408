package common

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
	aclconfig "github.com/nspcc-dev/vfsacl/cmd/vfsacl/config/acl"
	loggerconfig "github.com/nspcc-dev/vfsacl/cmd/vfsacl/config/logger"
	"github.com/nspcc-dev/vfsacl/misc"
	"github.com/nspcc-dev/vfsacl/pkg/metrics"
	"github.com/nspcc-dev/vfsacl/pkg/util/logger"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type fsKey struct{}

// WithFs returns a context making commands read configuration and ACL files
// from fs instead of the OS filesystem.
func WithFs(ctx context.Context, fs afero.Fs) context.Context {
	return context.WithValue(ctx, fsKey{}, fs)
}

func fsFromContext(ctx context.Context) afero.Fs {
	if ctx != nil {
		if fs, ok := ctx.Value(fsKey{}).(afero.Fs); ok {
			return fs
		}
	}
	return afero.NewOsFs()
}

// Env is a set of components a command works with.
type Env struct {
	Fs      afero.Fs
	Log     *zap.Logger
	Store   xattr.Store
	Adapter *vfs.Adapter
	Brand   vfs.Brand

	closeStore  func() error
	registry    *prometheus.Registry
	metricsFile string
}

// OpenEnv reads the configuration and constructs the components. Stores
// that support it are opened in read-only mode if readOnly is set.
// Env must be closed after use.
func OpenEnv(cmd *cobra.Command, readOnly bool) (*Env, error) {
	e := &Env{
		Fs: fsFromContext(cmd.Context()),
	}

	c, err := readConfig(cmd, e.Fs)
	if err != nil {
		return nil, err
	}

	e.Log, err = newLogger(c)
	if err != nil {
		return nil, err
	}

	e.Brand, err = readBrand(cmd, c)
	if err != nil {
		return nil, err
	}

	e.Store, e.closeStore, err = newStore(c, e.Fs, e.Log, readOnly)
	if err != nil {
		return nil, fmt.Errorf("could not open attribute store: %w", err)
	}

	opts := []vfs.Option{vfs.WithLogger(e.Log)}

	e.metricsFile, _ = cmd.Flags().GetString(MetricsFlag)
	if e.metricsFile != "" {
		reg := prometheus.NewRegistry()

		m, err := metrics.NewACLMetrics(reg, misc.Version)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("could not register metrics: %w", err)
		}

		e.registry = reg
		opts = append(opts, vfs.WithMetrics(m))
	}

	e.Adapter = vfs.New(e.Store, opts...)

	return e, nil
}

func readConfig(cmd *cobra.Command, fs afero.Fs) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(ConfigFlag)
	if !cmd.Flags().Changed(ConfigFlag) {
		if ok, _ := afero.Exists(fs, path); !ok {
			path = ""
		}
	}

	c, err := config.New(config.Prm{},
		config.WithFs(fs),
		config.WithConfigFile(path),
	)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return c, nil
}

func newLogger(c *config.Config) (*zap.Logger, error) {
	var prm logger.Prm

	err := prm.SetLevelString(loggerconfig.Level(c))
	if err != nil {
		return nil, fmt.Errorf("invalid logger level: %w", err)
	}

	err = prm.SetEncoding(loggerconfig.Encoding(c))
	if err != nil {
		return nil, err
	}

	ts, set := loggerconfig.Timestamp(c)
	if !set {
		ts = term.IsTerminal(int(os.Stderr.Fd()))
	}
	if !ts {
		prm.DisableTimestamp()
	}

	return logger.NewLogger(&prm)
}

func readBrand(cmd *cobra.Command, c *config.Config) (vfs.Brand, error) {
	if cmd.Flags().Changed(BrandFlag) {
		s, _ := cmd.Flags().GetString(BrandFlag)
		return vfs.ParseBrand(s)
	}

	return aclconfig.Brand(c)
}

// Object returns the description of the target object.
func (e *Env) Object(referral bool) vfs.Object {
	return vfs.StaticObject{
		Brand:    e.Brand,
		Referral: referral,
	}
}

// Close flushes metrics and releases the store.
func (e *Env) Close() error {
	var errs []error

	if e.registry != nil {
		err := prometheus.WriteToTextfile(e.metricsFile, e.registry)
		if err != nil {
			errs = append(errs, fmt.Errorf("could not write metrics: %w", err))
		}
	}

	if e.closeStore != nil {
		err := e.closeStore()
		if err != nil {
			errs = append(errs, fmt.Errorf("could not close attribute store: %w", err))
		}
	}

	_ = e.Log.Sync()

	return errors.Join(errs...)
}

// OpenTarget opens the filesystem object attributes are managed for.
func OpenTarget(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open target: %w", err)
	}
	return f, nil
}
