package render

import "image/color"

// Palette is a background, line and text color triple.
type Palette struct {
	Name       string
	Background color.RGBA
	Line       color.RGBA
	Text       color.RGBA
}

// Palettes are the built-in color schemes, cycled in order.
var Palettes = []Palette{
	{
		Name:       "phosphor",
		Background: color.RGBA{R: 5, G: 10, B: 20, A: 0xff},
		Line:       color.RGBA{R: 0, G: 255, B: 128, A: 0xff},
		Text:       color.RGBA{R: 0, G: 200, B: 255, A: 0xff},
	},
	{
		Name:       "neon",
		Background: color.RGBA{R: 10, G: 0, B: 25, A: 0xff},
		Line:       color.RGBA{R: 255, G: 60, B: 180, A: 0xff},
		Text:       color.RGBA{R: 0, G: 255, B: 255, A: 0xff},
	},
	{
		Name:       "blueprint",
		Background: color.RGBA{R: 10, G: 25, B: 50, A: 0xff},
		Line:       color.RGBA{R: 180, G: 220, B: 255, A: 0xff},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 0xff},
	},
}

// PaletteAt returns the palette at index i, wrapping in both directions.
func PaletteAt(i int) Palette {
	n := len(Palettes)
	return Palettes[((i%n)+n)%n]
}

// NextPalette returns the index following i.
func NextPalette(i int) int {
	return (i + 1) % len(Palettes)
}

// Hex formats a color as #rrggbb.
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}
