package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ImageHeaders/dialogue"
	"ImageHeaders/structs"
	"ImageHeaders/utils"
)

// RunOptions controls a manifest run.
type RunOptions struct {
	Options
	Select bool      // prompt for a subset of jobs
	Clean  bool      // remove stale headers of the selected jobs first
	In     io.Reader // prompt input, defaults to os.Stdin
	Out    io.Writer // prompt output, defaults to os.Stdout
}

// RunGeneration converts every (selected) job in the manifest. A failing job
// is logged and skipped; the returned error joins all job failures.
func RunGeneration(manifest *structs.Manifest, opts RunOptions) ([]*Result, error) {
	if len(manifest.Jobs) == 0 {
		log.Println("No images configured. Nothing to generate.")
		log.Println("Hint: Run with -bootstrap to configure images from a directory.")
		return nil, nil
	}

	jobs := manifest.Jobs
	if opts.Select {
		in, out := opts.In, opts.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		selected, err := dialogue.ShowJobSelection(in, out, jobs)
		if err != nil {
			return nil, fmt.Errorf("%w: image selection failed: %w", ErrUsage, err)
		}
		jobs = selected
	}
	if len(jobs) == 0 {
		log.Println("No images selected for generation.")
		return nil, nil
	}

	if opts.OutputDir == "" {
		opts.OutputDir = manifest.OutputDir
	}

	log.Printf("Processing %d selected image(s) for generation.", len(jobs))

	if opts.Clean {
		byDir := make(map[string][]string)
		for _, job := range jobs {
			dir := job.GetOutputDir(opts.OutputDir)
			byDir[dir] = append(byDir[dir], job.Identifier)
		}
		for dir, ids := range byDir {
			if _, err := utils.Reset(dir, ids); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrIO, err)
			}
		}
	}

	var results []*Result
	var failures []error
	for _, job := range jobs {
		log.Printf("--- Processing image: %s ---", job.Identifier)

		dir := job.GetOutputDir(opts.OutputDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			err = fmt.Errorf("%w: failed to ensure output directory %s exists: %w", ErrIO, dir, err)
			log.Printf("ERROR: %s: %v. Skipping generation.", job.Identifier, err)
			failures = append(failures, err)
			continue
		}

		result, err := Generate(job, opts.Options)
		if err != nil {
			log.Printf("ERROR: %s: %v", job.Identifier, err)
			failures = append(failures, fmt.Errorf("%s: %w", job.Identifier, err))
			continue
		}
		results = append(results, result)
	}

	log.Printf("Selected image(s) processed: %d succeeded, %d failed.", len(results), len(failures))
	return results, errors.Join(failures...)
}
