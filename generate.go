package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"derbyicon/encoder"
	"derbyicon/icon"
	"derbyicon/log"
	"derbyicon/preview"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Paint the icon and write the main and foreground PNGs",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", ".", "Output directory")
	cmd.Flags().Int("size", icon.DefaultSize, "Icon width and height in pixels")
	cmd.Flags().String("name", "app_icon.png", "Main icon file name")
	cmd.Flags().String("foreground-name", "app_icon_foreground.png", "Foreground icon file name")
	cmd.Flags().Bool("preview", false, "Show the icon in the terminal after writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	size, _ := cmd.Flags().GetInt("size")
	name, _ := cmd.Flags().GetString("name")
	fgName, _ := cmd.Flags().GetString("foreground-name")
	showPreview, _ := cmd.Flags().GetBool("preview")

	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}

	img := icon.Image(size)
	data, err := encodeLogged(size, size, func() ([]byte, error) {
		return encoder.EncodeImage(img)
	})
	if err != nil {
		return fmt.Errorf("encoding icon: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// The foreground icon is currently the same image as the main one.
	for _, n := range []string{name, fgName} {
		path := filepath.Join(dir, n)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Written(path, len(data))
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%d bytes)\n", path, len(data))
	}

	if showPreview {
		if !preview.Available() {
			log.Warnf("preview skipped for %s: stdout is not a terminal", name)
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --preview skipped, stdout is not a terminal")
			return nil
		}
		log.Info("preview_terminal: " + name)
		return preview.Run(name, img)
	}
	return nil
}

// encodeLogged runs encode and records size and timing metrics for a
// width x height image.
func encodeLogged(width, height int, encode func() ([]byte, error)) ([]byte, error) {
	start := time.Now()
	data, err := encode()
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	raw := encoder.RawSize(width, height)
	log.Encoded(log.Metrics{
		Width:            width,
		Height:           height,
		RawSizeKB:        float64(raw) / 1024,
		CompressedSizeKB: float64(len(data)) / 1024,
		CompressionPct:   (1 - float64(len(data))/float64(raw)) * 100,
		EncodeTimeMs:     float64(elapsed.Microseconds()) / 1000,
	})
	return data, nil
}
