// Package terminal connects a display.Display to a real terminal.
//
//   - [Sink]: display.Sink emitting ANSI sequences into a buffered writer,
//     downsampling colors to the detected termenv profile
//   - [Terminal]: raw mode, size queries and screen setup over golang.org/x/term
//   - [WatchResize]: SIGWINCH delivery as [ResizeEvent] values
//   - [DecodeKeys] and [ReadKeys]: raw stdin bytes to [Key] events
//
// Target environments are xterm-compatible terminals on Unix systems.
package terminal
