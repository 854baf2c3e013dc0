// Package logger provides the logging facade built on zap:
//   - a process-wide logger (Default) created once and shared by every caller,
//   - a threshold picked from the log_level configuration attribute,
//   - tier markup (muted DEBUG/INFO, yellow WARNING, bold red ERROR/CRITICAL),
//   - context helpers (ToContext/FromContext/WithName) and per-tier functions.
//
// Services receive the logger through their context, so tests can inject an
// isolated instance built with New.
package logger
