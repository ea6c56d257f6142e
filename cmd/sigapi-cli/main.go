/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/cmd/sigapi-cli/cmd"
)

var logger = log.New("sigapi-cli", log.WithStdOut(os.Stderr))

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		logger.Fatal("Failed to run sigapi-cli", log.WithError(err))
	}
}
