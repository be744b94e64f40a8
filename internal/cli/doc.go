// Package cli implements the interactive mxradar shell: a small REPL over
// the domain services, with the same commands the web dashboard offers.
//
// The command handlers print classified error messages and never raw
// transport details; the REPL loop itself ignores handler errors so a failed
// lookup never kills the shell. Session expiry detected by the API layer is
// announced once and the prompt falls back to the anonymous command set.
package cli
