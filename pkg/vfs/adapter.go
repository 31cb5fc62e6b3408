package vfs

import (
	"time"

	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"go.uber.org/zap"
)

// Object is a filesystem object attributes are served for.
type Object interface {
	// ACLBrand returns the ACL dialect the object is configured with.
	ACLBrand() Brand
	// IsReferral checks whether the object is a referral to another
	// location.
	IsReferral(attrs *AttrList) bool
}

// StaticObject is an Object with properties fixed at construction.
type StaticObject struct {
	Brand    Brand
	Referral bool
}

// ACLBrand implements Object.
func (o StaticObject) ACLBrand() Brand { return o.Brand }

// IsReferral implements Object.
func (o StaticObject) IsReferral(*AttrList) bool { return o.Referral }

// Metrics collects statistics of ACL operations.
type Metrics interface {
	AddACLOperation(op string, status string, d time.Duration)
	AddACLEntries(op string, n int)
}

type noopMetrics struct{}

func (noopMetrics) AddACLOperation(string, string, time.Duration) {}
func (noopMetrics) AddACLEntries(string, int)                     {}

// Adapter serves ACL attributes of objects from the extended attribute store.
type Adapter struct {
	store     xattr.Store
	log       *zap.Logger
	metrics   Metrics
	locations LocationsReader
}

// Option configures Adapter.
type Option func(*Adapter)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		a.log = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m Metrics) Option {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithLocations sets the reader of referral locations. Nil disables
// fs-locations retrieval. By default locations are read from the
// xattr.FSLocationName attribute of the same store.
func WithLocations(r LocationsReader) Option {
	return func(a *Adapter) {
		a.locations = r
	}
}

// New returns Adapter working over the given store.
func New(store xattr.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store:     store,
		log:       zap.NewNop(),
		metrics:   noopMetrics{},
		locations: NewXattrLocations(store),
	}

	for i := range opts {
		opts[i](a)
	}

	return a
}
