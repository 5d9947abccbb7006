// Package scheduler drives the source loader across all resolvable units of
// a workspace concurrently. Units are independent, so the problem is an
// embarrassingly-parallel map: a bounded worker pool pulls units off a
// channel, each unit's traversal-and-read runs to completion on one worker,
// and results fan back in through a concurrent map keyed by unit name.
//
// One unit's I/O failure is recorded in that unit's entry and never aborts
// siblings; a run always completes and always returns a mapping.
package scheduler
