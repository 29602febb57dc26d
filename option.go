package viewfinder

// Option configures view construction (functional options pattern).
type Option func(*config)

// WithRoots sets the ordered root directories searched during lookup. The
// first root yielding a match wins. A single directory is the one-element
// case.
func WithRoots(dirs ...string) Option {
	return func(c *config) {
		c.roots = dirs
	}
}

// WithDefaultEngine sets the engine hint used when the view name carries no
// extension. Accepts "html" or ".html" interchangeably.
func WithDefaultEngine(name string) Option {
	return func(c *config) {
		c.defaultEngine = name
	}
}

// WithEngines sets the shared engine registry. Callers are expected to reuse
// one Registry across all views so each extension's provider loads once per
// process.
func WithEngines(reg *Registry) Option {
	return func(c *config) {
		c.engines = reg
	}
}

// WithLoader sets the provider loader consulted when the view's extension
// has no engine bound yet, e.g. engine.Default().
func WithLoader(loader Loader) Option {
	return func(c *config) {
		c.loader = loader
	}
}

// WithExistsFunc overrides the filesystem probe used by lookup, e.g. for
// virtual filesystems or tests. The function must follow the ExistsFunc
// contract: never fail, collapse every access error to false.
func WithExistsFunc(exists ExistsFunc) Option {
	return func(c *config) {
		c.exists = exists
	}
}
