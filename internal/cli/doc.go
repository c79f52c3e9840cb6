// Package cli wires together the Cobra command tree for the draftmsg
// binary.
//
// It defines the root command and all subcommands (suggest, hook, config,
// version), binds flags, reads configuration, runs the classifier over the
// staged diff, and returns deterministic exit codes for scripting.
package cli
