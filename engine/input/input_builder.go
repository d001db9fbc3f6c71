package input

// CollectorOption is a functional option for configuring a Collector.
type CollectorOption func(*collector)

// WithMouseDeltaLimit sets the per-snapshot mouse delta magnitude above which
// the delta is discarded as a desync artifact.
//
// Parameters:
//   - limit: the delta magnitude limit in pixels (values <= 0 keep the default)
//
// Returns:
//   - CollectorOption: functional option to set the limit
func WithMouseDeltaLimit(limit float32) CollectorOption {
	return func(c *collector) {
		if limit > 0 {
			c.mouseDeltaLimit = limit
		}
	}
}
