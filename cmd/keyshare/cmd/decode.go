package cmd

import (
	"os"
	"strconv"

	"github.com/corvid-labs/keyshare/envelope"
	"github.com/corvid-labs/keyshare/internal/wire"
	"github.com/corvid-labs/keyshare/keyerr"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <input-dir> <share-prefix> <share-count> <output>",
	Short: "Reassemble a key from shares and open a sealed file",
	Args:  cobra.ExactArgs(4),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	inDir, prefix, countArg, output := args[0], args[1], args[2], args[3]

	count, err := strconv.Atoi(countArg)
	if err != nil {
		return keyerr.Wrap(keyerr.BadArgument, err, "decode: share-count must be an integer")
	}

	kind := envelope.XOR
	if thresholdSet {
		kind = envelope.Shamir
	}

	nonce, ciphertext, shares, err := wire.ReadEnvelope(inDir, prefix, count, thresholdSet)
	if err != nil {
		return err
	}

	plaintext, err := envelope.Decode(nonce, ciphertext, shares, kind)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, plaintext, 0o600); err != nil {
		return keyerr.Wrap(keyerr.IoFailure, err, "decode: writing output")
	}

	log.Info("decoded", "input", inDir, "shares", count, "shamir", thresholdSet, "output", output)
	return nil
}
