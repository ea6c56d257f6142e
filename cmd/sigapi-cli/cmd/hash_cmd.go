/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

const fileFlagName = "file"

// NewHashCommand returns the command that prints the data hash expected by create.
func NewHashCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the base64-encoded SHA-256 hash of a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			sum := sha256.Sum256(data)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(sum[:]))

			return err
		},
	}

	cmd.Flags().StringVar(&path, fileFlagName, "", "path to the file to hash ('-' reads stdin)")

	_ = cmd.MarkFlagRequired(fileFlagName)

	return cmd
}
