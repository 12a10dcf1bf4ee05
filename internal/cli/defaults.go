package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Manage stored defaults",
	Long: `Reads and writes non-secret defaults in ~/.harvest/config.toml.
Known keys: vk.peers, telegram.chats, files.mode.`,
}

var defaultsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a stored default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore("")
		if err != nil {
			return err
		}

		val, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("no default set for %s", args[0])
		}
		cmd.Printf("%v\n", val)
		return nil
	},
}

var defaultsSetCmd = &cobra.Command{
	Use:   "set [key] [value...]",
	Short: "Store a default",
	Long:  `Stores a default value. Multiple values are stored as a list.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore("")
		if err != nil {
			return err
		}

		key := args[0]
		if len(args) == 2 {
			return store.Set(key, args[1])
		}
		return store.Set(key, args[1:])
	},
}

func init() {
	defaultsCmd.AddCommand(defaultsGetCmd)
	defaultsCmd.AddCommand(defaultsSetCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// storedString returns a stored string default, or "" when unset.
func storedString(key string) string {
	store, err := config.NewStore("")
	if err != nil {
		return ""
	}
	return store.GetString(key)
}

// storedList returns a stored list default, accepting both a list value
// and a comma-separated string.
func storedList(key string) []string {
	store, err := config.NewStore("")
	if err != nil {
		return nil
	}

	if vals := store.GetStringSlice(key); len(vals) > 0 {
		return vals
	}
	if s := store.GetString(key); s != "" {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return nil
}
