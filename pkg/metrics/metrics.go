package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "vfsacl"

// ACLMetrics groups collectors of the ACL attribute adapter.
type ACLMetrics struct {
	aclMetrics
}

// NewACLMetrics creates collectors and registers them together with the
// version gauge in r.
func NewACLMetrics(r prometheus.Registerer, version string) (*ACLMetrics, error) {
	m := newACLMetrics()

	err := m.register(r)
	if err != nil {
		return nil, err
	}

	err = registerVersionMetric(r, namespace, version)
	if err != nil {
		return nil, err
	}

	return &ACLMetrics{aclMetrics: m}, nil
}
