// Package hooks dispatches git hook invocations to the commands configured in
// githooks.toml.
//
// A [Dispatcher] handles exactly one hook event per process:
//
//  1. Load the repository's [config.HookConfig].
//  2. For prepare-commit-msg, fill an empty commit message from the current
//     branch name (see package commitmsg). This always happens.
//  3. Run the configured command, if any, through a [Launcher] in the
//     repository root with git's hook arguments appended.
//
// Unconfigured hooks are a no-op and spawn no process. A command that exits
// non-zero yields an [ExitError] carrying its status so git sees the real
// failure code. A command that cannot be started yields a [LaunchError].
//
// # Launchers
//
// Commands run through the platform shell: [POSIXShell] ("sh -c") or
// [WindowsCmd] ("cmd /C"). [DefaultLauncher] picks one from the host OS.
//
// # Delegating Scripts
//
// [Script] renders the script installed into a repository's hooks directory.
// It execs the hookmaster binary and carries [Marker] so installed scripts
// can be told apart from foreign ones.
package hooks
