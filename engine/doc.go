// Package engine provides the stock engine providers as a static loader
// table keyed by extension name. Use Default for the standard wiring or
// build a Table with custom providers.
package engine
