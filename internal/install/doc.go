// Package install writes hookmaster's delegating scripts into repositories.
//
// [Installer.Install] resolves the hooks directory with git (core.hooksPath
// and linked worktrees are honoured) and writes one script per supported hook.
// Scripts are recognized by their marker line; any other existing hook is
// foreign and is only replaced with Force, after a copy is saved next to it
// with [BackupSuffix].
//
// [FindRepos] discovers the repositories below a directory for "add", and
// [Status] reports the state of every hook for "doctor".
package install
