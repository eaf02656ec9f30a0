package commands

import (
	"bufio"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"

	"github.com/spf13/cobra"
)

// DemoCmd draws two primes, asks for a public exponent and a message, then
// prints the message, its encryption and the decryption of that.
func (commandHandler *CommandHandler) DemoCmd(cmd *cobra.Command, _ []string) error {
	processor, err := commandHandler.processor(cmd)
	if err != nil {
		return err
	}

	kp, err := processor.GenerateKeys(textbook.AutoExponent())
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "p: %d\n", kp.P)
	fmt.Fprintf(out, "q: %d\n", kp.Q)
	fmt.Fprintf(out, "n: %d\n", kp.N)

	kp.E, kp.S, err = promptExponent(in, out, kp.Phi)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Private Key: %d\n", kp.S)

	fmt.Fprint(out, "Enter message to encrypt: ")
	message, err := readLine(in)
	if err != nil {
		return err
	}

	encrypted, err := processor.Encrypt(message, kp.PublicKey())
	if err != nil {
		return err
	}
	decrypted, err := processor.Decrypt(encrypted, kp.PrivateKey())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "M: %s\n", message)
	fmt.Fprintf(out, "C: %s\n", encrypted)
	fmt.Fprintf(out, "P: %s\n", decrypted)
	return nil
}
