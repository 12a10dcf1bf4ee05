package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/connectors/telegram"
)

var telegramLimit int

var telegramCmd = &cobra.Command{
	Use:   "telegram [chat...]",
	Short: "Ingest Telegram chat history",
	Long: `Pulls up to --limit messages from each chat (@username or id) through
the prepared Telegram client and prints a summary of the produced
documents. Messages carrying only media become documents with empty
content and the media class as their type.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTelegram,
}

func init() {
	telegramCmd.Flags().IntVar(&telegramLimit, "limit", 1000, "Maximum messages per chat")
	rootCmd.AddCommand(telegramCmd)
}

func runTelegram(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = storedList("telegram.chats")
	}
	if len(args) == 0 {
		return errors.New("no chats given; pass them as arguments or set the telegram.chats default")
	}

	if chatClient == nil {
		return errors.New("telegram client not configured")
	}

	connector := telegram.New(chatClient, nil)
	docs, err := connector.Fetch(context.Background(), args, telegramLimit)
	if err != nil {
		return fmt.Errorf("fetch telegram history: %w", err)
	}

	printSummary(cmd, docs)
	return nil
}
