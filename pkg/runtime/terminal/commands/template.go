package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
)

func NewTemplateCmd(exporter *export.Exporter) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the blank starter template with placeholder tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifact, err := exporter.StarterTemplate()
			if err != nil {
				return err
			}

			outPath := filepath.Join(outDir, artifact.Filename)
			if err := os.WriteFile(outPath, artifact.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			cmd.Printf("Starter template written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the template into")

	return cmd
}
