package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/textbook"
)

// promptExponent asks for public exponents until one is invertible modulo phi
// and returns it together with its inverse.
func promptExponent(in *bufio.Reader, out io.Writer, phi uint64) (uint64, uint64, error) {
	for {
		fmt.Fprint(out, "Enter a public key: ")
		line, err := readLine(in)
		if err != nil {
			return 0, 0, err
		}

		e, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			fmt.Fprintln(out, "Not a number, try again.")
			continue
		}
		if e <= 1 || e >= phi {
			fmt.Fprintf(out, "Must lie strictly between 1 and %d, try again.\n", phi)
			continue
		}

		s, err := textbook.ModInverse(e, phi)
		if err != nil {
			fmt.Fprintln(out, "Not coprime to n, try again.")
			continue
		}
		return e, s, nil
	}
}

// readLine returns the next line without its line ending. A final line without
// a newline is returned as is; an exhausted reader yields io.ErrUnexpectedEOF.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
