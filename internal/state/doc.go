// Package state holds the headless interaction models shared by every
// stateful widget: toggle sets, controlled values, bounded ranges and the
// windowed pager, plus option filtering and multi-step flows.
//
// Every model is a synchronous reducer over in-memory state. Nothing here
// blocks, schedules work or performs I/O, and a model instance belongs to a
// single widget.
package state
