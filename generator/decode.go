package generator

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode opens path and decodes it with whichever registered format matches.
func Decode(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: opening image %s: %w", ErrDecode, path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("%w: decoding image %s: %w", ErrDecode, path, err)
	}
	b := img.Bounds()
	log.Printf("Decoded %s image %s (%d x %d)", format, path, b.Dx(), b.Dy())
	return img, format, nil
}
