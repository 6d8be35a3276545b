package sylvester

// Option configures Basis.
type Option func(*Options)

// Options holds the resolved Basis configuration.
type Options struct {
	// Identity keeps Z^0·X^0 = I, producing d² elements spanning u(d).
	Identity bool
}

// WithIdentity includes the identity, producing a basis of u(d).
func WithIdentity() Option {
	return func(o *Options) { o.Identity = true }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
