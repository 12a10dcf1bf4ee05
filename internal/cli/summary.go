package cli

import (
	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// printSummary prints a per-type breakdown of the produced documents.
func printSummary(cmd *cobra.Command, docs []domain.Document) {
	byType := make(map[string]int)
	for i := range docs {
		label, _ := docs[i].Metadata[domain.MetaType].(string)
		if label == "" {
			label = "unknown"
		}
		byType[label]++
	}

	cmd.Printf("Produced %d documents\n", len(docs))
	for label, count := range byType {
		cmd.Printf("  %-20s %d\n", label, count)
	}
}
