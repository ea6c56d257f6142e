/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/internal/logfields"
)

// NewFlowCommand returns the command that runs create, assign and get in sequence.
func NewFlowCommand() *cobra.Command {
	var hash string

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Create a signature, assign it an identifier and fetch the stored record",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := initService(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			ctx := cmd.Context()
			st := time.Now()

			created, err := svc.CreateSignature(ctx, hash)
			if err != nil {
				return err
			}

			signature := created.Signature()
			if signature == nil {
				return errors.New("create response has no signature")
			}

			assigned, err := svc.AssignIdentifier(ctx, signature)
			if err != nil {
				return err
			}

			id := assigned.ID()
			if id == "" {
				return errors.New("assign response has no id")
			}

			logger.Infoc(ctx, "Signature stored", logfields.WithSignatureID(id))

			record, err := svc.GetSignature(ctx, id)
			if err != nil {
				return err
			}

			if record.ID() != id {
				return fmt.Errorf("record id %q does not match assigned id %q", record.ID(), id)
			}

			logger.Debugc(ctx, "Flow completed",
				logfields.WithSignatureID(id), log.WithDuration(time.Since(st)))

			return printDocument(cmd, record)
		},
	}

	createConnectionFlags(cmd)

	cmd.Flags().StringVar(&hash, hashFlagName, "", "base64-encoded SHA-256 hash of the data to sign")

	_ = cmd.MarkFlagRequired(hashFlagName)

	return cmd
}
