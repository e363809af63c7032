// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Constellation drawing sessions, line erasing, interaction event log
// 0.1.0 - Initial release: catalog loading, star field view, tap-to-focus,
//         label toggle, headless summary/export modes
