// Package diag carries diagnostic messages from the generation pipeline to
// the host environment.
//
// Severities mirror the classic compiler message kinds: note, warning,
// mandatory warning, error, and other. The pipeline reports through the
// Reporter interface; LogReporter renders to a terminal and Recorder
// collects messages for inspection.
package diag
