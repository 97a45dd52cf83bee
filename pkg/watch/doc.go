// Package watch reports changes to catalog files under a directory tree.
//
// Events are filtered by file extension and collected for a debounce delay,
// so an editor saving several files produces one callback with every changed
// path.
package watch
