package analyzer

// DiagSink receives formatted diagnostic lines as Analyze runs each
// pipeline stage. The core never logs on its own; callers that want
// visibility provide one.
type DiagSink func(format string, args ...any)

// Config holds the analyzer configuration.
type Config struct {
	// DiagSink receives the diagnostic lines Analyze emits as the pipeline
	// runs (optional). Not every stage emits a line for every outcome.
	DiagSink DiagSink

	// Force continues past an image-size bounds violation instead of
	// returning a *BoundsError immediately.
	Force bool

	// RAMFMaxDist overrides the matched FidType's RAMFMaxDist for this
	// run. Zero means "use the catalog's value".
	RAMFMaxDist int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring an Analyze call.
type Option func(*Config)

// WithDiagSink sets the sink that receives per-stage diagnostic lines.
//
// Example:
//
//	rf, err := analyzer.Analyze(buf, name, catalog,
//	    analyzer.WithDiagSink(func(format string, args ...any) {
//	        log.Printf(format, args...)
//	    }),
//	)
func WithDiagSink(sink DiagSink) Option {
	return func(c *Config) {
		c.DiagSink = sink
	}
}

// WithForce continues analysis past an image-size bounds violation
// instead of failing immediately with a *BoundsError.
func WithForce(force bool) Option {
	return func(c *Config) {
		c.Force = force
	}
}

// WithRAMFMaxDist overrides the matched FidType's RAMFMaxDist for this
// run, widening or narrowing how far find_ramf drifts its search away
// from the naive p_fid + FIDBaseSize offset.
func WithRAMFMaxDist(dist int) Option {
	return func(c *Config) {
		if dist > 0 {
			c.RAMFMaxDist = dist
		}
	}
}

func (c *Config) diag(format string, args ...any) {
	if c.DiagSink != nil {
		c.DiagSink(format, args...)
	}
}
