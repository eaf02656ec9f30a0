package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EncryptCmd encrypts --message with the public key at --public-key
func (commandHandler *CommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	processor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	publicKey, err := processor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	ciphertext, err := processor.Encrypt(message, publicKey)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// DecryptCmd decrypts --message with the keypair at --private-key
func (commandHandler *CommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}
	ciphertext, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	processor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	keypair, err := processor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	plaintext, err := processor.Decrypt(ciphertext, keypair.PrivateKey())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), plaintext)
	return nil
}
