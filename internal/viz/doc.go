// Package viz renders random walk statistics to the terminal.
//
//   - [HistogramPlot]: density histogram of final positions overlaid
//     with the normal curve predicted by the central limit theorem
//   - [ScatterFit]: framed ASCII scatter of ⟨x²⟩ against the step
//     count with the fitted line drawn through it
//
// Both return plain strings so the CLI prints them directly and the TUI
// embeds them in its result views.
package viz
