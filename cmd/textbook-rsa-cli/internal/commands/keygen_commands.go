package commands

import (
	"bufio"
	"fmt"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/app"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// GenerateKeysCmd generates a keypair and persists both halves in the selected directory
func (commandHandler *CommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	exponent, err := cmd.Flags().GetUint64("exponent")
	if err != nil {
		return fmt.Errorf("invalid exponent flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("invalid interactive flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}
	if interactive && exponent != 0 {
		return fmt.Errorf("--exponent and --interactive are mutually exclusive")
	}

	processor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	kp, err := app.GenerateKeypair(processor, exponent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if interactive {
		fmt.Fprintf(out, "p: %d\nq: %d\nn: %d\n", kp.P, kp.Q, kp.N)
		kp.E, kp.S, err = promptExponent(bufio.NewReader(cmd.InOrStdin()), out, kp.Phi)
		if err != nil {
			return err
		}
	}

	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	if err := processor.SavePrivateKeyToFile(kp, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	if err := processor.SavePublicKeyToFile(kp.PublicKey(), publicKeyFilePath); err != nil {
		return err
	}

	fmt.Fprintf(out, "n: %d\ne: %d\n", kp.N, kp.E)
	fmt.Fprintf(out, "private key: %s\npublic key: %s\n", privateKeyFilePath, publicKeyFilePath)
	return nil
}

// IsPrimeCmd reports whether --n is probably prime
func (commandHandler *CommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) error {
	n, err := cmd.Flags().GetUint64("n")
	if err != nil {
		return fmt.Errorf("invalid n flag: %w", err)
	}

	processor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	verdict := "composite"
	if processor.IsPrime(n, 0) {
		verdict = "probably prime"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d is %s\n", n, verdict)
	return nil
}
