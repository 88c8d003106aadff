package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// threshold is the persistent -t/--threshold flag shared by encode and
// decode. Its absence selects XOR sharing; its presence selects Shamir.
var threshold int

// thresholdSet is true once the user has passed -t/--threshold, since
// cobra's zero value for an unset int flag is indistinguishable from an
// explicit 0.
var thresholdSet bool

var log = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	Prefix:          "keyshare",
})

var rootCmd = &cobra.Command{
	Use:   "keyshare",
	Short: "Seal a file under a random key and split the key into recoverable shares",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		thresholdSet = cmd.Flags().Changed("threshold")
	},
}

// Execute runs the root command and exits 1 on any surfaced error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&threshold, "threshold", "t", 0, "Shamir reconstruction threshold; omit for n-of-n XOR sharing")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}
