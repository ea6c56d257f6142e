/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustbloc/sigapi/internal/logfields"
	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

const (
	hashFlagName         = "hash"
	dataHashFileFlagName = "data-hash-file"
	levelFlagName        = "level"
)

type createCommandFlags struct {
	hash         string
	dataHashFile string
	level        int
}

// NewCreateCommand returns the command that requests a new signature.
func NewCreateCommand() *cobra.Command {
	flags := &createCommandFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a signature over a data hash",
		Long: "Create a signature over a base64-encoded SHA-256 data hash, or submit a full request body " +
			"loaded from a file, and print the service response.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.signatureRequest(cmd)
			if err != nil {
				return err
			}

			svc, err := initService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			logger.Debugc(cmd.Context(), "Creating signature",
				logfields.WithCommand(cmd.Name()), logfields.WithRequest(req))

			doc, err := svc.SubmitSignatureRequest(cmd.Context(), req)
			if err != nil {
				return err
			}

			return printDocument(cmd, doc)
		},
	}

	createConnectionFlags(cmd)

	cmd.Flags().StringVar(&flags.hash, hashFlagName, "", "base64-encoded SHA-256 hash of the data to sign")
	cmd.Flags().StringVar(&flags.dataHashFile, dataHashFileFlagName, "",
		"path to a JSON file with the full create request body ('-' reads stdin)")
	cmd.Flags().IntVar(&flags.level, levelFlagName, 0, "signature level")

	cmd.MarkFlagsOneRequired(hashFlagName, dataHashFileFlagName)
	cmd.MarkFlagsMutuallyExclusive(hashFlagName, dataHashFileFlagName)

	return cmd
}

func (f *createCommandFlags) signatureRequest(cmd *cobra.Command) (*signatureapi.SignatureRequest, error) {
	if f.dataHashFile == "" {
		return &signatureapi.SignatureRequest{
			DataHash: signatureapi.DataHash{
				Algorithm: signatureapi.DefaultHashAlgorithm,
				Value:     f.hash,
			},
			Level: f.level,
		}, nil
	}

	b, err := readInput(cmd, f.dataHashFile)
	if err != nil {
		return nil, fmt.Errorf("read data hash file: %w", err)
	}

	var req signatureapi.SignatureRequest

	if err = json.Unmarshal(b, &req); err != nil {
		return nil, fmt.Errorf("parse data hash file: %w", err)
	}

	if cmd.Flags().Changed(levelFlagName) {
		req.Level = f.level
	}

	return &req, nil
}
