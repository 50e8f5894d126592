// Package output persists the two artifacts of a review run: the full
// composed prompt and the raw model response, each as a flat text file
// named with the run's timestamp. These files are the only state that
// survives a run.
package output
