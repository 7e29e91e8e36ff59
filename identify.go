package main

import (
	"fmt"
	"os"

	"derbyicon/encoder"

	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "List PNG chunks and header fields, verifying checksums",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	chunks, err := encoder.ReadChunks(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("parsing %s: no chunks after signature", path)
	}
	hdr, err := encoder.ParseHeader(chunks[0])
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", hdr.Width, hdr.Height)
	fmt.Fprintf(out, "Bit depth:  %d\n", hdr.BitDepth)
	fmt.Fprintf(out, "Color type: %d (%s)\n", hdr.ColorType, colorTypeName(hdr.ColorType))
	fmt.Fprintf(out, "Interlace:  %d\n", hdr.Interlace)
	fmt.Fprintf(out, "File size:  %d bytes\n", len(data))
	fmt.Fprintf(out, "Chunks:\n")
	for _, c := range chunks {
		fmt.Fprintf(out, "  %s  %8d bytes  crc %08x\n", c.Type, len(c.Data), c.CRC)
	}
	return nil
}

func colorTypeName(ct uint8) string {
	switch ct {
	case 0:
		return "grayscale"
	case 2:
		return "truecolor"
	case 3:
		return "indexed"
	case 4:
		return "grayscale+alpha"
	case encoder.ColorTypeRGBA:
		return "truecolor+alpha"
	}
	return "unknown"
}
