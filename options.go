package cfb

type writeConfig struct {
	limits    Limits
	rootCLSID [16]byte
}

type WriteOption func(*writeConfig)

func WithLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithRootCLSID sets the identifier written on the root directory
// record instead of DefaultRootCLSID.
func WithRootCLSID(id [16]byte) WriteOption {
	return func(c *writeConfig) { c.rootCLSID = id }
}
