/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"github.com/spf13/cobra"
)

const idFlagName = "id"

// NewGetCommand returns the command that fetches a stored signature record.
func NewGetCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a signature record by identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := initService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			doc, err := svc.GetSignature(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printDocument(cmd, doc)
		},
	}

	createConnectionFlags(cmd)

	cmd.Flags().StringVar(&id, idFlagName, "", "signature identifier returned by assign")

	_ = cmd.MarkFlagRequired(idFlagName)

	return cmd
}
