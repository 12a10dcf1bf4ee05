// Package cli wires the cobra commands for the harvest binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// chatClient is the prepared Telegram client, injected by the host
// process. Nil means the telegram command reports it is not configured.
var chatClient driven.ChatClient

// SetChatClient injects the prepared chat client used by the telegram
// command.
func SetChatClient(c driven.ChatClient) {
	chatClient = c
}

var (
	verboseFlag bool
	envFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Ingest documents, Telegram chats and VK dialogs into a uniform corpus",
	Long: `Harvest normalises unstructured content from local documents,
Telegram chat history and VK dialog history into a uniform document
record (text + metadata) for downstream indexing.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", "", "Path to a .env file with credentials")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
