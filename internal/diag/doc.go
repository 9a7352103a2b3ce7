// Package diag defines the diagnostic model shared by the front-end phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a short
// message, the primary source.Span, and optional notes. Phases emit through
// the Reporter interface so that storage and formatting stay decoupled;
// BagReporter collects into a capacity-bounded Bag, which the driver hands to
// internal/diagfmt for rendering.
//
// The package performs no IO and no formatting. Keep messages short and
// actionable; notes must add context rather than restate the message.
package diag
