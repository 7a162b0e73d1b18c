// Package config loads the stackplan configuration file.
//
// A configuration describes one cluster stack: the network it lands in,
// the CoreOS release, per-plane isolation and sizing, and where the
// rendered template goes. Every field has a default, so an empty file is
// valid apart from the network selector, and command-line flags override
// file values.
package config
