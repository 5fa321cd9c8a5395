// Package labels provides consistent labeling for workload resources.
//
// Every workload carries an "application" label derived from its name.
// Callers may add their own labels on top; caller-supplied values win
// on key collision. The same keys drive the label selectors used for
// bulk deletion of pods and replica sets.
package labels
