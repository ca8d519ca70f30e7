// project/structs/structs.go
package structs

import (
	"fmt"
	"strings"

	"ImageHeaders/utils"
)

// Default canvas, the resolution the kernel's framebuffer runs at.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Fit modes control how a source image is placed on the canvas.
const (
	FitStrict  = "strict"  // source must cover the canvas, read from the top-left
	FitScale   = "scale"   // resample to the canvas with Catmull-Rom
	FitNearest = "nearest" // resample to the canvas with nearest-neighbour
)

// FitModes lists the accepted values of Job.Fit.
var FitModes = []string{FitStrict, FitScale, FitNearest}

type Manifest struct {
	OutputDir string `yaml:"outputDir" json:"outputDir,omitempty"`
	Jobs      []Job  `yaml:"jobs" json:"jobs"`
}

type Job struct {
	Image      string `yaml:"image" json:"image"`           // Path of the source image
	Identifier string `yaml:"identifier" json:"identifier"` // Array symbol, file base name and guard
	// Width and Height can be a number (as string) or an expression
	// (e.g. "Align(SourceWidth, 64)").
	Width      string `yaml:"width,omitempty" json:"width,omitempty"`
	Height     string `yaml:"height,omitempty" json:"height,omitempty"`
	Fit        string `yaml:"fit,omitempty" json:"fit,omitempty"`
	Background string `yaml:"background,omitempty" json:"background,omitempty"` // "#rrggbb"; blends alpha over it
	OutputDir  string `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
}

func (j *Job) GetWidth(sourceWidth, sourceHeight int) (int, error) {
	if j.Width == "" {
		return DefaultWidth, nil
	}
	w, err := utils.EvaluateDimension(j.Width, sourceWidth, sourceHeight)
	if err != nil {
		return 0, fmt.Errorf("invalid width for %s: %w", j.Identifier, err)
	}
	return w, nil
}

func (j *Job) GetHeight(sourceWidth, sourceHeight int) (int, error) {
	if j.Height == "" {
		return DefaultHeight, nil
	}
	h, err := utils.EvaluateDimension(j.Height, sourceWidth, sourceHeight)
	if err != nil {
		return 0, fmt.Errorf("invalid height for %s: %w", j.Identifier, err)
	}
	return h, nil
}

// GetFit returns the normalized fit mode, defaulting to FitStrict.
func (j *Job) GetFit() (string, error) {
	fit := strings.ToLower(strings.TrimSpace(j.Fit))
	if fit == "" {
		return FitStrict, nil
	}
	for _, m := range FitModes {
		if fit == m {
			return fit, nil
		}
	}
	return "", fmt.Errorf("unknown fit mode '%s' for %s (want one of %s)", j.Fit, j.Identifier, strings.Join(FitModes, ", "))
}

// GetOutputDir resolves the job's output directory against the manifest default.
func (j *Job) GetOutputDir(manifestDir string) string {
	if j.OutputDir != "" {
		return j.OutputDir
	}
	if manifestDir != "" {
		return manifestDir
	}
	return "."
}
