package config_test

import (
	"testing"

	"github.com/nspcc-dev/vfsacl/cmd/internal/configvalidator"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestConfig_Fs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/vfsacl.yaml", []byte(`
logger:
  timestamp: true
store:
  bolt:
    perm: 420
`), 0o600))

	c, err := config.New(config.Prm{},
		config.WithFs(fs),
		config.WithConfigFile("/etc/vfsacl.yaml"),
	)
	require.NoError(t, err)
	require.Equal(t, "/etc/vfsacl.yaml", c.Used())

	s := c.Sub("logger")
	require.True(t, s.IsSet("timestamp"))
	require.False(t, s.IsSet("level"))
	require.True(t, config.BoolSafe(s, "timestamp"))
	require.EqualValues(t, 420, config.Uint32Safe(c.Sub("store").Sub("bolt"), "perm"))

	_, err = config.New(config.Prm{},
		config.WithFs(fs),
		config.WithConfigFile("/etc/missing.yaml"),
	)
	require.Error(t, err)
}

func TestConfig_UnknownField(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/vfsacl.yaml", []byte(`
store:
  type: bolt
  blot:
    path: /tmp/x.db
`), 0o600))

	_, err := config.New(config.Prm{},
		config.WithFs(fs),
		config.WithConfigFile("/etc/vfsacl.yaml"),
	)
	require.ErrorIs(t, err, configvalidator.ErrUnknownField)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("VFSACL_STORE_BOLT_PERM", "17")

	c, err := config.New(config.Prm{})
	require.NoError(t, err)
	require.Empty(t, c.Used())

	b := c.Sub("store").Sub("bolt")
	require.True(t, b.IsSet("perm"))
	require.EqualValues(t, 17, config.Uint32Safe(b, "perm"))
	require.Equal(t, "17", config.StringSafe(b, "perm"))
}
