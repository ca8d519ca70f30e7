package generator

import (
	"fmt"
	"image"
	"log"

	"ImageHeaders/structs"
	"ImageHeaders/utils"

	"golang.org/x/image/draw"
)

// Prepare places src on a width x height canvas according to fit.
//
// FitStrict returns src unchanged; the scan reads the top-left canvas window
// and fails if src does not cover it. The resampling modes always return an
// image of exactly the canvas size.
func Prepare(src image.Image, width, height int, fit string) (image.Image, error) {
	if err := utils.CheckCanvasSize(width, height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	b := src.Bounds()
	switch fit {
	case "", structs.FitStrict:
		if err := checkCoverage(b, width, height); err != nil {
			return nil, err
		}
		if b.Dx() > width || b.Dy() > height {
			log.Printf("Warning: source image is %d x %d, only the top-left %d x %d is converted", b.Dx(), b.Dy(), width, height)
		}
		return src, nil
	case structs.FitScale, structs.FitNearest:
		var scaler draw.Scaler = draw.CatmullRom
		if fit == structs.FitNearest {
			scaler = draw.NearestNeighbor
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		log.Printf("Info: resampled %d x %d source to %d x %d (%s)", b.Dx(), b.Dy(), width, height, fit)
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: unknown fit mode '%s'", ErrUsage, fit)
	}
}
