/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/sigapi/internal/logfields"
	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

const (
	signatureFlagName     = "signature"
	signatureFileFlagName = "signature-file"
	responseFileFlagName  = "response-file"
)

type assignCommandFlags struct {
	signature     string
	signatureFile string
	responseFile  string
}

// NewAssignCommand returns the command that stores a signature under a new identifier.
func NewAssignCommand() *cobra.Command {
	flags := &assignCommandFlags{}

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign an identifier to a signature",
		Long: "Send a signature returned by create back to the service to have it stored under a " +
			"generated identifier, and print the service response.",
		RunE: func(cmd *cobra.Command, args []string) error {
			signature, err := flags.readSignature(cmd)
			if err != nil {
				return err
			}

			svc, err := initService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			doc, err := svc.AssignIdentifier(cmd.Context(), signature)
			if err != nil {
				return err
			}

			logger.Debugc(cmd.Context(), "Identifier assigned",
				logfields.WithCommand(cmd.Name()), logfields.WithSignatureID(doc.ID()))

			return printDocument(cmd, doc)
		},
	}

	createConnectionFlags(cmd)

	cmd.Flags().StringVar(&flags.signature, signatureFlagName, "", "signature JSON value as returned by create")
	cmd.Flags().StringVar(&flags.signatureFile, signatureFileFlagName, "",
		"path to a file with the signature JSON value ('-' reads stdin)")
	cmd.Flags().StringVar(&flags.responseFile, responseFileFlagName, "",
		"path to a saved create response; its signature field is used ('-' reads stdin)")

	cmd.MarkFlagsOneRequired(signatureFlagName, signatureFileFlagName, responseFileFlagName)
	cmd.MarkFlagsMutuallyExclusive(signatureFlagName, signatureFileFlagName, responseFileFlagName)

	return cmd
}

func (f *assignCommandFlags) readSignature(cmd *cobra.Command) (json.RawMessage, error) {
	var raw []byte

	switch {
	case f.signature != "":
		raw = []byte(f.signature)
	case f.signatureFile != "":
		b, err := readInput(cmd, f.signatureFile)
		if err != nil {
			return nil, fmt.Errorf("read signature file: %w", err)
		}

		raw = b
	default:
		b, err := readInput(cmd, f.responseFile)
		if err != nil {
			return nil, fmt.Errorf("read response file: %w", err)
		}

		if !gjson.ValidBytes(b) {
			return nil, errors.New("response file is not valid JSON")
		}

		raw = signatureapi.Document(b).Signature()
		if raw == nil {
			return nil, errors.New("response file has no signature field")
		}
	}

	if !gjson.ValidBytes(raw) {
		return nil, errors.New("signature is not valid JSON")
	}

	return raw, nil
}
