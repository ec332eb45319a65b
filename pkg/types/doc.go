// Package types defines the Card entity, the CardStore interface, the
// attach-time Config, and the standard error values for the Spark
// workbench core.
package types
