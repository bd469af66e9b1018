// Package main is the entry point for the toyrsa-go CLI, a thin wrapper
// around pkg/toyrsa for generating key pairs and encrypting or
// decrypting files. All file and text handling lives here; the library
// core only ever sees integers.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "toyrsa-go",
		Short: "Educational RSA key generation, encryption, and decryption",
		Long: `toyrsa-go is a command-line wrapper around an educational RSA
implementation whose number theory is built from primitive big-integer
arithmetic.

It is a teaching tool: there is no padding scheme and no side-channel
protection. Do not protect real secrets with it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newKeygenCmd(), newEncryptCmd(), newDecryptCmd())
	return rootCmd.Execute()
}
