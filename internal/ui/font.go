// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

var (
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

func init() {
	regularFace = loadFace(goregular.TTF, defaultFontSize, "regular")
	boldFace = loadFace(gobold.TTF, titleFontSize, "bold")
}

// loadFace decodes an embedded TTF into a face of the given size, logging
// and returning nil on failure rather than panicking — a missing font
// degrades text rendering, it shouldn't crash the game.
func loadFace(ttf []byte, size float64, label string) *text.GoTextFace {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		log.Printf("ui: failed to load %s font: %v", label, err)
		return nil
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// GetRegularFace returns the body-text font face.
func GetRegularFace() *text.GoTextFace {
	return regularFace
}

// GetBoldFace returns the heading font face.
func GetBoldFace() *text.GoTextFace {
	return boldFace
}

// GetFaceWithSize returns a face sharing the regular font's glyph source at
// a custom size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	if regularFace == nil {
		return nil
	}
	return &text.GoTextFace{Source: regularFace.Source, Size: size}
}

// MeasureText returns the pixel width and height s would occupy in face.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
