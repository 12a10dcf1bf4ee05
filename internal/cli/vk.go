package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/config"
	"github.com/harvestly/harvest-cli/internal/connectors/vk"
)

var (
	vkLimit int
	vkMode  string
)

var vkCmd = &cobra.Command{
	Use:   "vk [peer...]",
	Short: "Ingest VK dialog history",
	Long: `Pulls up to --limit messages from each dialog and prints a summary of
the produced documents. Peers are numeric peer ids (user id, or
2000000000 + chat_id for conversations) or user screen names. Requires
VK_USER_TOKEN or VK_GROUP_TOKEN in the environment or a .env file.`,
	Args: cobra.ArbitraryArgs,
	RunE: runVK,
}

func init() {
	vkCmd.Flags().IntVar(&vkLimit, "limit", 1000, "Maximum messages per dialog")
	vkCmd.Flags().StringVar(&vkMode, "mode", string(vk.ModeUser), "Token mode: user or group")
	rootCmd.AddCommand(vkCmd)
}

func runVK(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = storedList("vk.peers")
	}
	if len(args) == 0 {
		return fmt.Errorf("no peers given; pass them as arguments or set the vk.peers default")
	}

	cfg, err := config.Load(envFileFlag)
	if err != nil {
		return err
	}

	token, err := cfg.VKToken(vkMode)
	if err != nil {
		return err
	}

	connector := vk.New(vk.NewClient(token), vk.HistoryOptions{}, func(processed int, current string) {
		cmd.Printf("\r%d documents (peer %s)", processed, current)
	})

	docs, err := connector.Fetch(context.Background(), args, vkLimit)
	cmd.Println()
	if err != nil {
		return fmt.Errorf("fetch vk history: %w", err)
	}

	printSummary(cmd, docs)
	return nil
}
