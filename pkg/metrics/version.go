package metrics

import "github.com/prometheus/client_golang/prometheus"

func registerVersionMetric(r prometheus.Registerer, namespace string, version string) error {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "version",
		Help:      "Application version",
		ConstLabels: prometheus.Labels{
			"version": version,
		},
	})

	err := r.Register(g)
	if err != nil {
		return err
	}

	g.Set(1)
	return nil
}
