package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/aclfile"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testConfigPath = "/etc/vfsacl.yaml"
	testACLPath    = "/acl.yaml"
)

const testACLDoc = `
entries:
  - type: allow
    mask: [READ_DATA, WRITE_DATA]
    who: "1000"
  - type: allow
    mask: [READ_DATA]
    who: "2000"
    group: true
  - type: deny
    flags: [FILE_INHERIT]
    mask: [DELETE]
    who: EVERYONE@
`

func testACL() *acl.ACL {
	return acl.New(
		acl.NewUserEntry(acl.TypeAllow, 0, acl.MaskReadData|acl.MaskWriteData, 1000),
		acl.NewGroupEntry(acl.TypeAllow, 0, acl.MaskReadData, 2000),
		acl.NewSpecialEntry(acl.TypeDeny, acl.FlagFileInherit, acl.MaskDelete, acl.SpecialEveryone),
	)
}

type testEnv struct {
	t      *testing.T
	fs     afero.Fs
	dir    string
	dbPath string
	target string
}

func newTestEnv(t *testing.T) *testEnv {
	e := &testEnv{
		t:   t,
		fs:  afero.NewMemMapFs(),
		dir: t.TempDir(),
	}
	e.dbPath = filepath.Join(e.dir, "attrs.db")
	e.target = filepath.Join(e.dir, "object")

	cfg := fmt.Sprintf(`
logger:
  level: error
store:
  type: bolt
  bolt:
    path: %s
    lock_timeout: 1s
`, e.dbPath)

	require.NoError(t, afero.WriteFile(e.fs, testConfigPath, []byte(cfg), 0o600))
	require.NoError(t, afero.WriteFile(e.fs, testACLPath, []byte(testACLDoc), 0o600))
	require.NoError(t, os.WriteFile(e.target, []byte("data"), 0o600))

	return e
}

func (e *testEnv) runIn(in io.Reader, args ...string) (string, string, error) {
	cmd := newCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(in)
	cmd.SetArgs(append(args, "--config", testConfigPath))

	err := cmd.ExecuteContext(common.WithFs(context.Background(), e.fs))

	return out.String(), errOut.String(), err
}

func (e *testEnv) run(args ...string) (string, error) {
	out, _, err := e.runIn(strings.NewReader(""), args...)
	return out, err
}

func (e *testEnv) setRaw(val []byte) {
	s, err := xattr.NewBoltStore(e.dbPath)
	require.NoError(e.t, err)
	defer func() { require.NoError(e.t, s.Close()) }()

	f, err := os.Open(e.target)
	require.NoError(e.t, err)
	defer f.Close()

	require.NoError(e.t, s.Set(f, xattr.NFS4ACLName, val))
}

func requireCode(t *testing.T, err error, code int) {
	var e cmderr.ExitErr
	require.ErrorAs(t, err, &e)
	require.Equal(t, code, e.Code, err)
}

func TestACLCommands(t *testing.T) {
	e := newTestEnv(t)

	t.Run("get absent", func(t *testing.T) {
		_, err := e.run("acl", "get", e.target)
		requireCode(t, err, cmderr.CodeNoACL)
	})

	t.Run("set", func(t *testing.T) {
		out, err := e.run("acl", "set", e.target, "--from", testACLPath)
		require.NoError(t, err)
		require.Contains(t, out, "ACL of 3 entries stored")
	})

	t.Run("get table", func(t *testing.T) {
		out, err := e.run("acl", "get", e.target)
		require.NoError(t, err)
		for _, s := range []string{"EVERYONE@", "group:2000", "WRITE_DATA", "FILE_INHERIT"} {
			require.Contains(t, out, s)
		}
	})

	t.Run("get yaml", func(t *testing.T) {
		out, err := e.run("acl", "get", e.target, "-o", "yaml")
		require.NoError(t, err)

		res, err := aclfile.Decode(strings.NewReader(out))
		require.NoError(t, err)
		require.Equal(t, testACL().Entries, res.Entries)
	})

	t.Run("get invalid output", func(t *testing.T) {
		_, err := e.run("acl", "get", e.target, "-o", "xml")
		require.Error(t, err)
	})

	t.Run("dump", func(t *testing.T) {
		out, err := e.run("acl", "dump", e.target)
		require.NoError(t, err)
		require.Contains(t, out, "Size: 68")
		require.Contains(t, out, "Entries: 3")
		require.Contains(t, out, "EVERYONE@")
	})

	t.Run("set from stdin", func(t *testing.T) {
		doc := "entries:\n  - type: allow\n    mask: [READ_ACL]\n    who: OWNER@\n"
		out, _, err := e.runIn(strings.NewReader(doc), "acl", "set", e.target, "-f", "-")
		require.NoError(t, err)
		require.Contains(t, out, "ACL of 1 entries stored")

		out, err = e.run("acl", "get", e.target)
		require.NoError(t, err)
		require.Contains(t, out, "OWNER@")
		require.NotContains(t, out, "EVERYONE@")
	})

	t.Run("set empty", func(t *testing.T) {
		_, _, err := e.runIn(strings.NewReader("entries: []\n"), "acl", "set", e.target, "-f", "-")
		requireCode(t, err, cmderr.CodeNoACL)

		out, err := e.run("acl", "get", e.target)
		require.NoError(t, err)
		require.Contains(t, out, "OWNER@")
	})

	t.Run("set invalid file", func(t *testing.T) {
		_, _, err := e.runIn(strings.NewReader("entries:\n  - type: permit\n    who: \"1\"\n"), "acl", "set", e.target, "-f", "-")
		require.Error(t, err)

		_, err = e.run("acl", "set", e.target, "-f", "/missing.yaml")
		require.Error(t, err)

		_, err = e.run("acl", "set", e.target)
		require.Error(t, err)
	})

	t.Run("remove", func(t *testing.T) {
		out, err := e.run("acl", "remove", e.target)
		require.NoError(t, err)
		require.Contains(t, out, "ACL removed")

		_, err = e.run("acl", "get", e.target)
		requireCode(t, err, cmderr.CodeNoACL)

		_, err = e.run("acl", "remove", e.target)
		requireCode(t, err, cmderr.CodeNoACL)

		_, err = e.run("acl", "dump", e.target)
		requireCode(t, err, cmderr.CodeNoACL)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := e.run("acl", "get", filepath.Join(e.dir, "missing"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestACLCommands_Corrupted(t *testing.T) {
	e := newTestEnv(t)

	// count says 5 entries, there are none
	e.setRaw([]byte{0, 0, 0, 5, 0, 0, 0, 0})

	_, err := e.run("acl", "get", e.target)
	requireCode(t, err, cmderr.CodeCorrupt)

	out, err := e.run("acl", "dump", e.target)
	requireCode(t, err, cmderr.CodeCorrupt)
	require.Contains(t, out, "Size: 8")
}

func TestACLCommands_Brand(t *testing.T) {
	e := newTestEnv(t)

	_, errOut, err := e.runIn(nil, "acl", "get", e.target, "--brand", "none")
	require.NoError(t, err)
	require.Contains(t, errOut, "not served")

	_, errOut, err = e.runIn(nil, "acl", "set", e.target, "-f", testACLPath, "--brand", "none")
	require.NoError(t, err)
	require.Contains(t, errOut, "nothing stored")

	_, err = e.run("acl", "get", e.target)
	requireCode(t, err, cmderr.CodeNoACL)

	_, err = e.run("acl", "get", e.target, "--brand", "posix")
	requireCode(t, err, cmderr.CodeUnsupported)

	_, err = e.run("acl", "get", e.target, "--brand", "afs")
	require.Error(t, err)
}

func TestReferralCommands(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.run("acl", "set", e.target, "-f", testACLPath)
	require.NoError(t, err)

	t.Run("no location", func(t *testing.T) {
		out, err := e.run("acl", "get", e.target, "--referral")
		require.NoError(t, err)
		require.NotContains(t, out, "FS locations")
	})

	out, err := e.run("referral", "set", e.target, "server:/export/home")
	require.NoError(t, err)
	require.Contains(t, out, "server:/export/home")

	out, err = e.run("acl", "get", e.target, "--referral")
	require.NoError(t, err)
	require.Contains(t, out, "FS locations: server:/export/home")
	require.Contains(t, out, "EVERYONE@")

	out, err = e.run("acl", "get", e.target)
	require.NoError(t, err)
	require.NotContains(t, out, "FS locations")

	_, err = e.run("referral", "set", e.target, "nocolon")
	require.Error(t, err)

	_, err = e.run("referral", "remove", e.target)
	require.NoError(t, err)
	_, err = e.run("referral", "remove", e.target)
	require.ErrorIs(t, err, xattr.ErrNotFound)
}

func TestMetricsTextfile(t *testing.T) {
	e := newTestEnv(t)
	mf := filepath.Join(e.dir, "vfsacl.prom")

	_, err := e.run("acl", "set", e.target, "-f", testACLPath, "--metrics-textfile", mf)
	require.NoError(t, err)

	data, err := os.ReadFile(mf)
	require.NoError(t, err)
	require.Contains(t, string(data), `vfsacl_acl_operations_total{op="write",status="ok"} 1`)

	_, err = e.run("acl", "get", e.target, "--metrics-textfile", mf)
	require.NoError(t, err)

	data, err = os.ReadFile(mf)
	require.NoError(t, err)
	require.Contains(t, string(data), `vfsacl_acl_operations_total{op="read",status="ok"} 1`)
	require.Contains(t, string(data), "vfsacl_version")
}

func TestConfig(t *testing.T) {
	e := newTestEnv(t)

	require.NoError(t, afero.WriteFile(e.fs, testConfigPath, []byte("store:\n  tpye: bolt\n"), 0o600))

	_, err := e.run("acl", "get", e.target)
	require.ErrorContains(t, err, "could not read config")

	require.NoError(t, afero.WriteFile(e.fs, testConfigPath, []byte("store:\n  type: tape\n"), 0o600))

	_, err = e.run("acl", "get", e.target)
	require.ErrorContains(t, err, "unknown store type")
}

func TestVersion(t *testing.T) {
	e := newTestEnv(t)

	out, err := e.run("--version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:")
}
