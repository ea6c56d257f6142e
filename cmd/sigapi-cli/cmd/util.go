/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

// stdout carries command output only.
var logger = log.New("sigapi-cli", log.WithStdOut(os.Stderr))

func printDocument(cmd *cobra.Command, doc signatureapi.Document) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), doc.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// readInput reads the named file, or the command input when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path) //nolint:gosec
}
