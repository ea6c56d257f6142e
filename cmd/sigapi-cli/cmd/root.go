/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand returns the sigapi-cli root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sigapi-cli",
		Short: "Signature service CLI",
		Long:  "sigapi-cli creates signatures over data hashes, assigns them identifiers and fetches stored records.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(NewCreateCommand())
	rootCmd.AddCommand(NewAssignCommand())
	rootCmd.AddCommand(NewGetCommand())
	rootCmd.AddCommand(NewFlowCommand())
	rootCmd.AddCommand(NewHashCommand())

	return rootCmd
}
