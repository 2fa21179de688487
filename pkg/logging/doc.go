// Package logging wires zerolog for cascade: a console writer on stderr plus
// an append-only log file under XDG_STATE_HOME, with per-component loggers.
package logging
