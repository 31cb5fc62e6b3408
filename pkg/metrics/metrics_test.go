package metrics_test

import (
	"testing"
	"time"

	"github.com/nspcc-dev/vfsacl/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestACLMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()

	m, err := metrics.NewACLMetrics(reg, "any_version")
	require.NoError(t, err)

	m.AddACLOperation("read", "ok", time.Millisecond)
	m.AddACLOperation("read", "no_acl", time.Millisecond)
	m.AddACLOperation("read", "ok", time.Millisecond)
	m.AddACLEntries("read", 3)

	count, err := testutil.GatherAndCount(reg, "vfsacl_acl_operations_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "vfsacl_acl_entries", "vfsacl_version")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = metrics.NewACLMetrics(reg, "any_version")
	require.Error(t, err, "double registration")
}
