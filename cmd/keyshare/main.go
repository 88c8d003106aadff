// Command keyshare is the CLI front end for the envelope encryption and
// secret-sharing core: it seals a file under a random key and splits that
// key into shares on disk, or reverses the process.
package main

import "github.com/corvid-labs/keyshare/cmd/keyshare/cmd"

func main() {
	cmd.Execute()
}
