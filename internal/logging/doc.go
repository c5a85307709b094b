// Package logging builds the zap logger used by the command line tool.
//
// Verbosity is explicit: the root command counts -v flags, maps them to a
// level and passes the resulting logger to its collaborators. There is no
// package-global logger.
package logging
