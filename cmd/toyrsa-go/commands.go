package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa"
	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa/encoding"
)

const keyDisplayWidth = 72

func newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and write both halves as text files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bits, err := cmd.Flags().GetInt("bits")
			if err != nil {
				return err
			}
			pubPath, err := cmd.Flags().GetString("pub")
			if err != nil {
				return err
			}
			privPath, err := cmd.Flags().GetString("priv")
			if err != nil {
				return err
			}

			pair, err := toyrsa.GenerateKeyPair(rand.Reader, toyrsa.GeneratorConfig{Bits: bits})
			if err != nil {
				return err
			}

			pubText := encoding.EncodePublicKey(pair.Public.N, pair.Public.E)
			if err := os.WriteFile(pubPath, []byte(pubText+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing public key: %w", err)
			}

			privText := encoding.EncodePublicKey(pair.Private.N, pair.Private.D)
			if err := os.WriteFile(privPath, []byte(privText+"\n"), 0o600); err != nil {
				return fmt.Errorf("writing private key: %w", err)
			}

			fmt.Printf("Public key (%d bits):\n%s\n", pair.Public.N.BitLen(),
				encoding.Chunkify(pubText, keyDisplayWidth))
			fmt.Printf("Private key written to %s (keep it secret)\n", privPath)
			return nil
		},
	}

	cmd.Flags().Int("bits", 2048, "Modulus size in bits")
	cmd.Flags().String("pub", "toyrsa.pub", "Public key output path")
	cmd.Flags().String("priv", "toyrsa.key", "Private key output path")
	return cmd
}

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with a public key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pubPath, err := cmd.Flags().GetString("pub")
			if err != nil {
				return err
			}
			inPath, err := cmd.Flags().GetString("in")
			if err != nil {
				return err
			}
			outPath, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}

			n, e, err := readKeyFile(pubPath)
			if err != nil {
				return err
			}
			pub := &toyrsa.PublicKey{N: n, E: e}

			msg, err := os.ReadFile(filepath.Clean(inPath))
			if err != nil {
				return fmt.Errorf("reading message: %w", err)
			}

			units, err := encoding.SplitMessage(msg, pub.N)
			if err != nil {
				return err
			}

			var b strings.Builder
			for _, m := range units {
				c, err := toyrsa.Encrypt(pub, m)
				if err != nil {
					return err
				}
				b.WriteString(encoding.EncodeInt(c))
				b.WriteByte('\n')
			}

			if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
				return fmt.Errorf("writing ciphertext: %w", err)
			}
			fmt.Printf("Encrypted %d bytes into %d units: %s\n", len(msg), len(units), outPath)
			return nil
		},
	}

	cmd.Flags().String("pub", "toyrsa.pub", "Public key path")
	cmd.Flags().String("in", "", "Plaintext input path")
	cmd.Flags().String("out", "", "Ciphertext output path")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file with a private key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			privPath, err := cmd.Flags().GetString("priv")
			if err != nil {
				return err
			}
			inPath, err := cmd.Flags().GetString("in")
			if err != nil {
				return err
			}
			outPath, err := cmd.Flags().GetString("out")
			if err != nil {
				return err
			}

			n, d, err := readKeyFile(privPath)
			if err != nil {
				return err
			}
			priv := &toyrsa.PrivateKey{N: n, D: d}

			in, err := os.Open(filepath.Clean(inPath))
			if err != nil {
				return fmt.Errorf("reading ciphertext: %w", err)
			}
			defer in.Close()

			var msg []byte
			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				c, err := encoding.DecodeInt(line)
				if err != nil {
					return err
				}
				m, err := toyrsa.Decrypt(priv, c)
				if err != nil {
					return err
				}
				msg = append(msg, encoding.IntToBytes(m)...)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading ciphertext: %w", err)
			}

			if err := os.WriteFile(outPath, msg, 0o644); err != nil {
				return fmt.Errorf("writing plaintext: %w", err)
			}
			fmt.Printf("Decrypted %d bytes: %s\n", len(msg), outPath)
			return nil
		},
	}

	cmd.Flags().String("priv", "toyrsa.key", "Private key path")
	cmd.Flags().String("in", "", "Ciphertext input path")
	cmd.Flags().String("out", "", "Plaintext output path")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// readKeyFile loads either key half; both use the same two-integer text
// format.
func readKeyFile(path string) (n, exp *big.Int, err error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("reading key: %w", err)
	}
	return encoding.DecodePublicKey(string(data))
}
