package cli

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/watzon/huebloom/color"
	"github.com/watzon/huebloom/palette"
)

var (
	genScheme string
	genCount  int
	genFormat string

	exportScheme string
	exportCount  int
	exportOut    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <color>",
	Short: "Generate a palette and print it to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseColor := args[0]
		if !color.IsValidHex(baseColor) {
			return fmt.Errorf("invalid hex color %q", baseColor)
		}

		scheme := palette.ParseScheme(genScheme)
		p := palette.New(baseColor, scheme, genCount)
		format := color.ParseFormat(genFormat)

		fmt.Println(p.Scheme.DisplayName())
		for _, hex := range p.HexCodes {
			fmt.Println(color.FormatSwatch(hex, format))
		}
		fmt.Printf("share: #%s\n", palette.EncodeFragment(p.Base, p.Scheme))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <color>",
	Short: "Render a palette card to a PNG file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseColor := args[0]
		if !color.IsValidHex(baseColor) {
			return fmt.Errorf("invalid hex color %q", baseColor)
		}

		p := palette.New(baseColor, palette.ParseScheme(exportScheme), exportCount)
		img, err := p.ToImage()
		if err != nil {
			return fmt.Errorf("failed to render palette: %w", err)
		}

		if err := gg.SavePNG(exportOut, img); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		fmt.Println("wrote", exportOut)
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print a random base color",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(palette.RandomHex())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genScheme, "scheme", "s", "monochromatic", "harmony scheme")
	generateCmd.Flags().IntVarP(&genCount, "count", "c", palette.DefaultCount, "number of swatches (3-10)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "hex", "output format (hex, hsl, oklch)")

	exportCmd.Flags().StringVarP(&exportScheme, "scheme", "s", "monochromatic", "harmony scheme")
	exportCmd.Flags().IntVarP(&exportCount, "count", "c", palette.DefaultCount, "number of swatches (3-10)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "palette.png", "output file")
}
