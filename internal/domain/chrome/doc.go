// Package chrome builds the UI chrome surrounding a window's content area:
// menu bar, toolbar, and address bar, assembled from a program's declarative
// configuration.
//
// The builder validates descriptors up front so that window creation can
// abort cleanly on bad configuration instead of registering a partial
// window. Per-window chrome state (status text, dropdown open, toolbar
// enablement driven by embedded content) lives on the types.Chrome record,
// not in this package.
package chrome
