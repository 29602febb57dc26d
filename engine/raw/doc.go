// Package raw provides a pass-through engine that streams the resolved file
// verbatim and ignores render data. Useful for static assets that share the
// view lookup path.
package raw
