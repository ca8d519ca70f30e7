// validator.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ImageHeaders/generator"
	"ImageHeaders/structs"
	"ImageHeaders/utils"
)

// ValidateJobs checks every job before any image is decoded. Problems that
// would make a job fail are counted as errors; anything the converter can
// still honour is only logged. Identifiers are never rewritten.
func ValidateJobs(jobs []structs.Job, defaultOutputDir string) error {
	validationErrors := 0
	seen := make(map[string]int)

	for i, job := range jobs {
		label := job.Identifier
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		if job.Image == "" {
			log.Printf("ERROR: Validation error in job '%s': missing 'image'.", label)
			validationErrors++
		} else if _, err := os.Stat(job.Image); err != nil {
			log.Printf("Warning: job '%s': image '%s' is not readable yet: %v", label, job.Image, err)
		}

		if job.Identifier == "" {
			log.Printf("ERROR: Validation error in job '%s': missing 'identifier'.", label)
			validationErrors++
		} else if !utils.IsValidSymbol(job.Identifier) {
			log.Printf("Warning: job '%s': identifier is not a valid C symbol; the header will not compile as-is.", label)
		}

		if job.Identifier != "" {
			out := filepath.Join(job.GetOutputDir(defaultOutputDir), utils.HeaderFileName(job.Identifier))
			if prev, dup := seen[out]; dup {
				log.Printf("ERROR: Validation error in job '%s': writes %s, same as job #%d.", label, out, prev)
				validationErrors++
			} else {
				seen[out] = i + 1
			}
		}

		for name, expr := range map[string]string{"width": job.Width, "height": job.Height} {
			if expr == "" {
				continue
			}
			if err := utils.CheckDimensionExpression(expr); err != nil {
				log.Printf("ERROR: Validation error in job '%s': %s: %v", label, name, err)
				validationErrors++
			}
		}

		if _, err := job.GetFit(); err != nil {
			log.Printf("ERROR: Validation error in job '%s': %v", label, err)
			validationErrors++
		}
		if _, err := generator.ParseBackground(job.Background); err != nil {
			log.Printf("ERROR: Validation error in job '%s': %v", label, err)
			validationErrors++
		}
	}

	if validationErrors > 0 {
		return fmt.Errorf("%w: found %d critical validation error(s). Please fix the manifest", generator.ErrUsage, validationErrors)
	}
	log.Printf("Validation complete for %d job(s).", len(jobs))
	return nil
}
