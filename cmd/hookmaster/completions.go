package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/config"
)

// completeHookName completes the first argument of "run" with supported hooks.
func completeHookName(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return config.HookNames, cobra.ShellCompDirectiveNoFileComp
}
