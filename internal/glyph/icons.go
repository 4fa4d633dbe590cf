package glyph

import "fmt"

// iconFiles maps each hex digit to its portal glyph image, in digit order.
var iconFiles = [16]string{
	"glyph-0-sunset.png",
	"glyph-1-bird.png",
	"glyph-2-face.png",
	"glyph-3-diplo.png",
	"glyph-4-eclipse.png",
	"glyph-5-balloon.png",
	"glyph-6-boat.png",
	"glyph-7-bug.png",
	"glyph-8-dragonfly.png",
	"glyph-9-galaxy.png",
	"glyph-a-voxel.png",
	"glyph-b-fish.png",
	"glyph-c-tent.png",
	"glyph-d-rocket.png",
	"glyph-e-tree.png",
	"glyph-f-atlas.png",
}

// IconFile returns the image filename for a single glyph digit (0-15).
func IconFile(digit int) (string, error) {
	if digit < 0 || digit > 15 {
		return "", &RangeError{
			Field:   "digit",
			Message: fmt.Sprintf("glyph digit must be between 0 and 15, got %d", digit),
		}
	}
	return iconFiles[digit], nil
}
