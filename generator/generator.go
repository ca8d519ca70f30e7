package generator

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"ImageHeaders/progress"
	"ImageHeaders/structs"
	"ImageHeaders/utils"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// literalSize is len("0xrrggbb, ").
const literalSize = 10

// headerTemplate wraps the pixel literals in include guards. The trailing
// spaces after "{", "};" and "#endif" are part of the format.
const headerTemplate = "#ifndef {{.Guard}}\n" +
	"#define {{.Guard}}\n" +
	"uint32_t {{.Identifier}}[{{.Width}} * {{.Height}}] = { \n" +
	"{{.Body}}\n" +
	"}; \n" +
	"#endif \n\n"

var headerTmpl = template.Must(template.New("header").Parse(headerTemplate))

// headerFields fills headerTemplate. Body is the already formatted literal run.
type headerFields struct {
	Guard      string
	Identifier string
	Width      int
	Height     int
	Body       string
}

// HeaderSpec describes the array to generate.
type HeaderSpec struct {
	Identifier string
	Width      int
	Height     int
	Background *colorful.Color
}

// Options apply to every job of a run.
type Options struct {
	OutputDir string            // used by jobs without their own output directory
	Progress  progress.Progress // nil means no progress display
	Verify    bool              // read each header back and compare it to the canvas
}

// Result describes a written header.
type Result struct {
	Path     string
	Format   string
	Width    int
	Height   int
	Literals int
}

// Accumulate scans img in row-major order (y outer, x inner) over the canvas
// and returns the complete header text. Coordinates are relative to
// img.Bounds().Min.
func Accumulate(img image.Image, spec HeaderSpec, p progress.Progress) ([]byte, error) {
	if spec.Identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrUsage)
	}
	if err := utils.CheckCanvasSize(spec.Width, spec.Height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	b := img.Bounds()
	if err := checkCoverage(b, spec.Width, spec.Height); err != nil {
		return nil, err
	}
	if p == nil {
		p = progress.Nop{}
	}

	total := spec.Width * spec.Height
	body := make([]byte, 0, total*literalSize)
	p.Start(total)
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			r, g, bl := channels(img.At(b.Min.X+x, b.Min.Y+y), spec.Background)
			body = appendLiteral(body, r, g, bl)
			p.Update(y*spec.Width + x + 1)
		}
	}
	p.Finish()

	var output bytes.Buffer
	output.Grow(len(body) + 256)
	err := headerTmpl.Execute(&output, headerFields{
		Guard:      utils.GuardToken(spec.Identifier),
		Identifier: spec.Identifier,
		Width:      spec.Width,
		Height:     spec.Height,
		Body:       string(body),
	})
	if err != nil {
		return nil, fmt.Errorf("error executing header template for %s: %w", spec.Identifier, err)
	}
	return output.Bytes(), nil
}

// WriteHeader writes text to <dir>/<identifier>.h, replacing any existing
// file. The text goes to a temp file in dir first, so a failed run never
// leaves a truncated header behind.
func WriteHeader(dir, identifier string, text []byte) (path string, err error) {
	path = filepath.Join(dir, utils.HeaderFileName(identifier))

	tmp, err := os.CreateTemp(dir, utils.TempPattern(identifier))
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file for %s: %w", ErrIO, path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Printf("Warning: Failed to remove temp file %s: %v", tmpPath, rmErr)
			}
		}
	}()

	if _, err = tmp.Write(text); err != nil {
		return "", fmt.Errorf("%w: writing %s: %w", ErrIO, tmpPath, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return "", fmt.Errorf("%w: setting mode on %s: %w", ErrIO, tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %w", ErrIO, tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("%w: renaming %s to %s: %w", ErrIO, tmpPath, path, err)
	}
	return path, nil
}

// Generate converts one job: decode, prepare, accumulate, write.
func Generate(job structs.Job, opts Options) (*Result, error) {
	if job.Image == "" {
		return nil, fmt.Errorf("%w: job %q has no image path", ErrUsage, job.Identifier)
	}
	if job.Identifier == "" {
		return nil, fmt.Errorf("%w: image %s has no identifier", ErrUsage, job.Image)
	}
	fit, err := job.GetFit()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	background, err := ParseBackground(job.Background)
	if err != nil {
		return nil, err
	}

	src, format, err := Decode(job.Image)
	if err != nil {
		return nil, err
	}
	sb := src.Bounds()
	width, err := job.GetWidth(sb.Dx(), sb.Dy())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	height, err := job.GetHeight(sb.Dx(), sb.Dy())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	canvas, err := Prepare(src, width, height, fit)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", job.Image, err)
	}

	spec := HeaderSpec{Identifier: job.Identifier, Width: width, Height: height, Background: background}
	log.Printf("Generating %s[%d * %d] from %s", job.Identifier, width, height, job.Image)
	text, err := Accumulate(canvas, spec, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", job.Image, err)
	}

	path, err := WriteHeader(job.GetOutputDir(opts.OutputDir), job.Identifier, text)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated %s", path)

	if opts.Verify {
		if err := VerifyHeader(path, canvas, spec); err != nil {
			return nil, err
		}
		log.Printf("Verified %s", path)
	}

	return &Result{Path: path, Format: format, Width: width, Height: height, Literals: width * height}, nil
}
