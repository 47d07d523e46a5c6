package cqlstream

import (
	"github.com/arloliu/cqlstream/adapter/cql"
	"github.com/arloliu/cqlstream/internal/logging"
	"github.com/arloliu/cqlstream/internal/metrics"
	"github.com/arloliu/cqlstream/types"
)

// DefaultPageSize is the number of rows fetched per page when no page size
// is configured.
const DefaultPageSize = 1024

// DefaultContactPoint is the contact point used when none is configured.
const DefaultContactPoint = "localhost"

// QueryConfig holds configuration for query execution.
type QueryConfig struct {
	// PageSize is the number of rows fetched per page. Must be positive.
	PageSize int

	// ContactPoints lists the cluster nodes for connection helpers. The
	// executor itself works on an established session and ignores this; it
	// is carried for callers that build their own cluster config from a
	// QueryConfig, such as the command line tool.
	ContactPoints []string

	// Consistency is the consistency level applied to each query.
	Consistency cql.Consistency

	// Logger receives structured diagnostics. Defaults to a no-op logger.
	Logger types.Logger

	// Metrics receives execution counters and durations. Defaults to a
	// no-op collector.
	Metrics types.MetricsCollector
}

// DefaultConfig returns a QueryConfig with sensible defaults.
//
// Defaults:
//   - PageSize: 1024
//   - ContactPoints: ["localhost"]
//   - Consistency: Quorum (the driver default)
//
// Returns:
//   - *QueryConfig: Configuration with default settings
func DefaultConfig() *QueryConfig {
	return &QueryConfig{
		PageSize:      DefaultPageSize,
		ContactPoints: []string{DefaultContactPoint},
		Consistency:   cql.Quorum,
		Logger:        logging.NewNopLogger(),
		Metrics:       metrics.NewNopMetrics(),
	}
}

// Validate checks the configuration for invalid settings.
//
// Returns:
//   - error: types.ErrInvalidPageSize if the page size is not positive
func (c *QueryConfig) Validate() error {
	if c.PageSize <= 0 {
		return types.ErrInvalidPageSize
	}

	return nil
}

// Option configures a QueryConfig.
type Option func(*QueryConfig)

// WithPageSize sets the number of rows fetched per page.
//
// Parameters:
//   - n: Rows per page, must be positive
//
// Returns:
//   - Option: Configuration option
func WithPageSize(n int) Option {
	return func(c *QueryConfig) {
		c.PageSize = n
	}
}

// WithContactPoints sets the cluster contact points.
//
// Parameters:
//   - points: Host names or addresses of cluster nodes
//
// Returns:
//   - Option: Configuration option
func WithContactPoints(points ...string) Option {
	return func(c *QueryConfig) {
		c.ContactPoints = points
	}
}

// WithConsistency sets the consistency level for queries.
//
// Parameters:
//   - consistency: The consistency level to use
//
// Returns:
//   - Option: Configuration option
func WithConsistency(consistency cql.Consistency) Option {
	return func(c *QueryConfig) {
		c.Consistency = consistency
	}
}

// WithLogger sets the logger for execution diagnostics.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *QueryConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *QueryConfig) {
		c.Metrics = collector
	}
}
