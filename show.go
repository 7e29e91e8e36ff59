package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"derbyicon/encoder"
	"derbyicon/icon"
	"derbyicon/log"
	"derbyicon/preview"
	"derbyicon/window"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Show the icon, or an existing PNG, in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("size", icon.DefaultSize, "Icon size to paint when no file is given")
	previewCmd.Flags().Bool("print", false, "Print the preview once instead of opening a full-screen view")
	previewCmd.Flags().Int("cols", preview.DefaultCols, "Preview width in cells for --print")
	previewCmd.Flags().Bool("window", false, "Open the icon in a native window (needs a -tags gui build)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	printOnce, _ := cmd.Flags().GetBool("print")
	cols, _ := cmd.Flags().GetInt("cols")
	inWindow, _ := cmd.Flags().GetBool("window")

	var (
		img   image.Image
		data  []byte
		title string
	)
	if len(args) == 1 {
		var err error
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		img, err = png.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		title = filepath.Base(args[0])
	} else {
		if size <= 0 {
			return fmt.Errorf("size must be positive, got %d", size)
		}
		painted := icon.Image(size)
		img = painted
		title = fmt.Sprintf("derby icon %dx%d", size, size)
		if inWindow {
			var err error
			if data, err = encoder.EncodeImage(painted); err != nil {
				return fmt.Errorf("encoding icon: %w", err)
			}
		}
	}

	if inWindow {
		log.Info("preview_window: " + title)
		if err := window.Show(title, icon.Resource(title, data), img); err != nil {
			return fmt.Errorf("opening window: %w", err)
		}
		return nil
	}
	if printOnce {
		fmt.Fprint(cmd.OutOrStdout(), preview.Render(img, cols))
		return nil
	}
	if !preview.Available() {
		return errors.New("preview needs a terminal; use --print to write it to a pipe")
	}
	log.Info("preview_terminal: " + title)
	return preview.Run(title, img)
}
