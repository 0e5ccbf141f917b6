// Package stats computes aggregate statistics over random walk trial
// sets and compares them against the central limit theorem.
//
//   - [Compute]: sample mean and mean of squares of final positions
//   - [NewHistogram]: normalized density histogram with the normal
//     density N(0, sqrt(N)) sampled at bin centers
//   - [AnalyzeScaling]: moments across a range of step counts plus an
//     OLS fit of ⟨x²⟩ against N; the diffusion constant follows from
//     ⟨x²⟩ = 2·D·N as half the fitted slope
//
// Render helpers produce fixed-width boxed summary tables for terminal
// output.
package stats
