package cmd

import (
	"os"
	"strconv"

	"github.com/corvid-labs/keyshare/envelope"
	"github.com/corvid-labs/keyshare/internal/wire"
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input> <share-prefix> <share-count> <output-dir>",
	Short: "Seal a file and split its key into shares",
	Args:  cobra.ExactArgs(4),
	RunE:  runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	input, prefix, countArg, outDir := args[0], args[1], args[2], args[3]

	count, err := strconv.Atoi(countArg)
	if err != nil {
		return keyerr.Wrap(keyerr.BadArgument, err, "encode: share-count must be an integer")
	}

	plaintext, err := os.ReadFile(input)
	if err != nil {
		return keyerr.Wrap(keyerr.IoFailure, err, "encode: reading input")
	}

	kind := envelope.XOR
	if thresholdSet {
		kind = envelope.Shamir
	}

	sealed, err := envelope.Encode(plaintext, count, threshold, kind)
	if err != nil {
		return err
	}

	if err := wire.WriteEnvelope(outDir, sealed, prefix); err != nil {
		return err
	}

	log.Info("encoded", "input", input, "shares", count, "threshold", threshold, "shamir", thresholdSet, "output", outDir)
	return nil
}
