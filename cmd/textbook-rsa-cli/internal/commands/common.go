package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelWarning,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addKeygenFlags registers the flags read by keygenSettingsFromFlags
func addKeygenFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rounds", config.DefaultRounds, "Miller-Rabin rounds per candidate")
	cmd.Flags().Uint64("max-prime", config.DefaultMaxPrime, "Upper bound for sampled primes (at most 2^31)")
	cmd.Flags().Uint64("seed", 0, "Seed of the random source (0 seeds from the clock)")
}

func keygenSettingsFromFlags(cmd *cobra.Command) (*config.KeygenSettings, error) {
	settings := config.NewKeygenSettings()

	if f := cmd.Flags().Lookup("rounds"); f != nil {
		rounds, err := cmd.Flags().GetInt("rounds")
		if err != nil {
			return nil, fmt.Errorf("invalid rounds flag: %w", err)
		}
		settings.Rounds = rounds
	}
	if f := cmd.Flags().Lookup("max-prime"); f != nil {
		maxPrime, err := cmd.Flags().GetUint64("max-prime")
		if err != nil {
			return nil, fmt.Errorf("invalid max-prime flag: %w", err)
		}
		settings.MaxPrime = maxPrime
	}
	if f := cmd.Flags().Lookup("seed"); f != nil {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return nil, fmt.Errorf("invalid seed flag: %w", err)
		}
		settings.Seed = seed
	}
	if f := cmd.Flags().Lookup("faithful"); f != nil {
		faithful, err := cmd.Flags().GetBool("faithful")
		if err != nil {
			return nil, fmt.Errorf("invalid faithful flag: %w", err)
		}
		settings.Faithful = faithful
	}

	return settings, nil
}

// CommandHandler encapsulates the textbook RSA operations exposed via CLI.
type CommandHandler struct {
	logger logger.Logger
}

// NewCommandHandler initializes a new CommandHandler with logging.
func NewCommandHandler() (*CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &CommandHandler{
		logger: loggerInstance,
	}, nil
}

// processor builds a processor from the flags of cmd
func (commandHandler *CommandHandler) processor(cmd *cobra.Command) (cryptoalg.TextbookRSAProcessor, error) {
	settings, err := keygenSettingsFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	processor, err := cryptography.NewTextbookRSAProcessor(settings, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}
	return processor, nil
}

// InitCommands registers all commands with the root command
func InitCommands(rootCmd *cobra.Command) error {
	handler, err := NewCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create command handler: %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA keypair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Uint64("exponent", 0, "Public exponent (0 selects 65537 or the next odd coprime number)")
	generateKeysCmd.Flags().Bool("interactive", false, "Prompt for the public exponent after the primes are drawn")
	generateKeysCmd.Flags().String("key-dir", ".", "Directory to store the keys")
	addKeygenFlags(generateKeysCmd)
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message of letters and spaces",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("public-key", "", "Path to the public key")
	encryptCmd.Flags().String("message", "", "Message to encrypt")
	encryptCmd.Flags().Bool("faithful", false, "Use wrapping arithmetic instead of rejecting oversized messages")
	_ = encryptCmd.MarkFlagRequired("public-key")
	_ = encryptCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message of letters and spaces",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("private-key", "", "Path to the private key")
	decryptCmd.Flags().String("message", "", "Ciphertext to decrypt")
	decryptCmd.Flags().Bool("faithful", false, "Use wrapping arithmetic instead of rejecting oversized messages")
	_ = decryptCmd.MarkFlagRequired("private-key")
	_ = decryptCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(decryptCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Test an integer for primality with Miller-Rabin",
		RunE:  handler.IsPrimeCmd,
	}
	isPrimeCmd.Flags().Uint64("n", 0, "Candidate")
	isPrimeCmd.Flags().Int("rounds", config.DefaultRounds, "Miller-Rabin rounds")
	isPrimeCmd.Flags().Uint64("seed", 0, "Seed of the random source (0 seeds from the clock)")
	_ = isPrimeCmd.MarkFlagRequired("n")
	rootCmd.AddCommand(isPrimeCmd)

	var demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Walk through key generation, encryption and decryption interactively",
		RunE:  handler.DemoCmd,
	}
	demoCmd.Flags().Bool("faithful", false, "Use wrapping arithmetic instead of rejecting oversized messages")
	addKeygenFlags(demoCmd)
	rootCmd.AddCommand(demoCmd)

	return nil
}
