package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvestly/harvest-cli/internal/connectors/filesystem"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/parsers"
)

var (
	filesRecursive  bool
	filesMode       string
	filesPageBreaks bool
)

var filesCmd = &cobra.Command{
	Use:   "files [root]",
	Short: "Ingest documents from a directory",
	Long: `Walks a directory, parses every supported file (.pdf .docx .md .pptx)
and prints a summary of the produced documents. Files that fail to parse
are skipped; the walk fails only when nothing at all was produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().BoolVarP(&filesRecursive, "recursive", "r", true, "Descend into subdirectories")
	filesCmd.Flags().StringVar(&filesMode, "mode", string(driven.ModeSingle), "Parse mode: single or elements")
	filesCmd.Flags().BoolVar(&filesPageBreaks, "page-breaks", false, "Emit page-break markers between pages")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("mode") {
		if mode := storedString("files.mode"); mode != "" {
			filesMode = mode
		}
	}

	opts := driven.DefaultParseOptions()
	opts.Mode = driven.ParseMode(filesMode)
	opts.IncludePageBreaks = filesPageBreaks

	walker := filesystem.New(parsers.New(), opts, func(processed int, current string) {
		cmd.Printf("\r%d processed: %s", processed, current)
	})

	docs, err := walker.Walk(context.Background(), args[0], filesRecursive)
	cmd.Println()
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}

	printSummary(cmd, docs)
	return nil
}
