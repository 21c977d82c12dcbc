package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcblab/pcbrepair/internal/container"
)

// NewDecodeCmd creates the decode command.
func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decrypt a repair file and dump its raw payloads",
		Long: `Decode decrypts a repair file container and writes the two payloads
it carries, the content document and the description document, as
separate files. Decryption tries the container as plaintext first and
then each known key in turn.

Examples:
  # Dump payloads next to the input
  pcbrepair decode board.fz

  # Dump payloads into a directory
  pcbrepair decode -o dumps board.fz`,
		Args: cobra.ExactArgs(1),
		RunE: runDecodeCmd,
	}

	cmd.Flags().StringP("output", "o", ".",
		"Directory for the dumped payload files")

	return cmd
}

// runDecodeCmd executes the decode command.
func runDecodeCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)

	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	path := args[0]
	raw, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	decoded, err := container.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	logger.Debug("container decoded",
		"file", path,
		"variant", decoded.KeyVariant,
		"contentBytes", len(decoded.Content),
		"descriptionBytes", len(decoded.Description),
	)

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	contentPath := filepath.Join(outputDir, base+"_content.txt")
	descriptionPath := filepath.Join(outputDir, base+"_description.txt")

	if err := os.WriteFile(contentPath, decoded.Content, 0600); err != nil {
		return fmt.Errorf("failed to write content payload: %w", err)
	}
	if err := os.WriteFile(descriptionPath, decoded.Description, 0600); err != nil {
		return fmt.Errorf("failed to write description payload: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Decoded %s (key variant: %s)\n", path, decoded.KeyVariant)
	fmt.Fprintf(out, "  content:     %s (%d bytes)\n", contentPath, len(decoded.Content))
	fmt.Fprintf(out, "  description: %s (%d bytes)\n", descriptionPath, len(decoded.Description))

	return nil
}
