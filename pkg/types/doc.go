// Package types defines the interface-definition tree, the catalog
// interface and entry type, configuration, and the standard error values
// shared by the hydrogen packages.
//
// See pkg/hydrogen for the object model and the structural checker that
// consume these types.
package types
