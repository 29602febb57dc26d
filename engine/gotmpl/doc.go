// Package gotmpl provides an html/template engine with a lazy parsed-template
// cache. Output is HTML-escaped per html/template rules.
package gotmpl
