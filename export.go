package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportVisualTXT writes the rendered board as plain text, one row per line.
func exportVisualTXT(g Grid, filename string) error {
	return withFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644, func(file *os.File) error {
		for _, line := range g.Lines() {
			if _, err := fmt.Fprintln(file, line); err != nil {
				return err
			}
		}
		return nil
	})
}

func exportPNG(g Grid, filename string) error {
	if g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("nothing to export")
	}

	// Character cell dimensions (pixels per character)
	charWidth := 8.0
	charHeight := 16.0
	padding := 1

	imageWidth := int(float64(g.Width()+2*padding) * charWidth)
	imageHeight := int(float64(g.Height()+2*padding) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Board frame
	dc.SetLineWidth(1.0)
	dc.SetColor(color.Black)
	dc.DrawRectangle(float64(padding)*charWidth, float64(padding)*charHeight,
		float64(g.Width())*charWidth, float64(g.Height())*charHeight)
	dc.Stroke()

	for y, row := range g {
		for x, r := range row {
			if r == blankCell {
				continue
			}
			cx := (float64(x+padding) + 0.5) * charWidth
			cy := (float64(y+padding) + 0.5) * charHeight
			dc.SetColor(pngColor(r))
			dc.DrawStringAnchored(string(r), cx, cy, 0.5, 0.5)
		}
	}

	return dc.SavePNG(filename)
}
