// Package viewfinder resolves logical view names to concrete template files
// on disk and delegates rendering to a pluggable engine bound per file
// extension. Engines are loaded lazily through a Loader and cached in a
// shared Registry, so one process binds each extension once.
package viewfinder
