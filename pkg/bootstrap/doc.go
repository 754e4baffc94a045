// Package bootstrap brings a machine to the baseline zshboot expects.
//
// A run is an ordered list of Steps. Each step has a side-effect-free
// existence check and an install action that only runs when the check
// fails. Steps marked Fatal abort the run when they cannot be satisfied,
// because later steps (framework plugins, the rc file itself) would not be
// trustworthy without them. Every other failure is logged and the run
// continues. Nothing is retried within a run.
//
// The only state bootstrap persists is the fuzzy finder sentinel, which
// keeps the fzf installer from running (and prompting) again.
package bootstrap
