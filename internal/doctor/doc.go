// Package doctor diagnoses a repository's hookmaster setup.
//
// The doctor package detects and optionally repairs issues including:
//
//   - Environment issues: git or the hookmaster binary missing from PATH.
//     Installed scripts exec hookmaster by name, so a missing binary makes
//     every hook fail.
//
//   - Config issues: githooks.toml that does not parse, or that contains keys
//     which are not hook names.
//
//   - Hook issues: delegating scripts that are missing, outdated, or were
//     written by another tool.
//
// # Usage
//
//	report, err := doctor.Run(ctx, printer, repoRoot, false) // check only
//	report, err := doctor.Run(ctx, printer, repoRoot, true)  // check and fix
//
// Only missing and outdated scripts are fixable. Foreign hooks are reported
// but left alone; "hookmaster add --force" replaces them.
//
// # Issue Categories
//
//   - [CategoryEnv]: Tools missing from PATH
//   - [CategoryConfig]: Problems with githooks.toml
//   - [CategoryHooks]: Problems with installed scripts
//
// Each [Issue] includes a description and suggested fix action.
package doctor
