// Package gotext provides a text/template engine with a lazy parsed-template
// cache. Unlike gotmpl it performs no output escaping.
package gotext
