package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"ImageHeaders/config"
	"ImageHeaders/generator"
	"ImageHeaders/progress"
	"ImageHeaders/structs"
)

const defaultBootstrapManifest = "headers.json"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "imghdr: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a failure to the process status: 2 for bad invocations,
// 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, generator.ErrUsage):
		return 2
	default:
		return 1
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("imghdr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.String("width", strconv.Itoa(structs.DefaultWidth), "Canvas width: integer or expression over SourceWidth/SourceHeight")
	height := fs.String("height", strconv.Itoa(structs.DefaultHeight), "Canvas height: integer or expression over SourceWidth/SourceHeight")
	fit := fs.String("fit", structs.FitStrict, "How the image is placed on the canvas: strict, scale or nearest")
	background := fs.String("background", "", "Blend transparent pixels over this #rrggbb colour")
	outputDir := fs.String("out", "", "Output directory for generated headers (default \".\")")
	manifestPath := fs.String("manifest", "", "YAML or JSON manifest listing images to convert")
	bootstrapDir := fs.String("bootstrap", "", "Scan this directory for images and add them to the manifest")
	selectJobs := fs.Bool("select", false, "Interactively choose which manifest images to convert")
	clean := fs.Bool("clean", false, "Remove existing headers of the converted images first")
	verify := fs.Bool("verify", false, "Read each generated header back and compare it to the image")
	quiet := fs.Bool("quiet", false, "Suppress log output and the progress bar")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: imghdr [flags] <image> <identifier>\n")
		fmt.Fprintf(fs.Output(), "       imghdr -manifest <jobs.yml> [-select] [-clean]\n")
		fmt.Fprintf(fs.Output(), "       imghdr -bootstrap <dir> [-manifest <jobs.json>]\n")
		fmt.Fprintf(fs.Output(), "Writes <identifier>.h holding uint32_t <identifier>[W * H] of 0xRRGGBB pixels.\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", generator.ErrUsage, err)
	}

	log.SetOutput(stderr)
	var bar progress.Progress = progress.NewBar(stderr)
	if *quiet {
		log.SetOutput(io.Discard)
		bar = progress.Nop{}
	}
	opts := generator.Options{OutputDir: *outputDir, Progress: bar, Verify: *verify}

	switch {
	case *bootstrapDir != "":
		path := *manifestPath
		if path == "" {
			path = defaultBootstrapManifest
		}
		return RunBootstrap(*bootstrapDir, path, *outputDir)

	case *manifestPath != "":
		manifest, err := config.LoadConfig(*manifestPath)
		if err != nil {
			return fmt.Errorf("%w: %w", generator.ErrUsage, err)
		}
		outDir := *outputDir
		if outDir == "" {
			outDir = manifest.OutputDir
		}
		if err := ValidateJobs(manifest.Jobs, outDir); err != nil {
			return err
		}
		results, err := generator.RunGeneration(manifest, generator.RunOptions{
			Options: opts,
			Select:  *selectJobs,
			Clean:   *clean,
			In:      stdin,
			Out:     stdout,
		})
		for _, r := range results {
			fmt.Fprintf(stdout, "%s: %d x %d, %d elements\n", r.Path, r.Width, r.Height, r.Literals)
		}
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("%w: expected <image> <identifier>, got %d argument(s)", generator.ErrUsage, fs.NArg())
	}
	if fs.NArg() > 2 {
		log.Printf("Warning: ignoring extra arguments %v", fs.Args()[2:])
	}

	job := structs.Job{
		Image:      fs.Arg(0),
		Identifier: fs.Arg(1),
		Width:      *width,
		Height:     *height,
		Fit:        *fit,
		Background: *background,
	}
	if err := ValidateJobs([]structs.Job{job}, *outputDir); err != nil {
		return err
	}
	result, err := generator.Generate(job, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d x %d, %d elements\n", result.Path, result.Width, result.Height, result.Literals)
	return nil
}
