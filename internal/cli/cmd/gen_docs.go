package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/bridgehost/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the command definitions.

By default man pages are installed to ~/.local/share/man/man1/ so that
'man bridgehost' works right away. Run 'mandb' if it does not.

Examples:
  bridgehost gen-docs
  bridgehost gen-docs --format markdown
  bridgehost gen-docs --output ./man`,
	// Works without a config or database.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			manDir, err := config.GetManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = manDir
		case "markdown":
			outputDir = "./docs"
		}
	}

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
	case "markdown":
		ext = ".md"
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output.
	rootCmd.DisableAutoGenTag = true

	if ext == ".1" {
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "BRIDGEHOST",
			Section: "1",
			Source:  "bridgehost " + buildInfo.Version,
			Manual:  "Bridgehost Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	} else if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}

	w := out(cmd)
	fmt.Fprintf(w, "Generated docs in %s\n", outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
	return nil
}
