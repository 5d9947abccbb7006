// Package app wires the pieces of the tool together: it validates the
// configuration produced by the CLI layer, builds the logger and the
// scheduler, dispatches to the right ingestion front end, and reports
// timings and loaded unit names.
package app
