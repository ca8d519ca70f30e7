package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ImageHeaders/config"
	"ImageHeaders/structs"
	"ImageHeaders/utils"
)

// imageExtensions are the file types a registered decoder can read.
var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// RunBootstrap scans sourceDir for images and adds a job for each one that
// the manifest at configPath does not list yet.
func RunBootstrap(sourceDir, configPath, outputDir string) error {
	log.Printf("Scanning '%s' directory for source images...", sourceDir)
	files, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory '%s': %w", sourceDir, err)
	}

	var images []string
	for _, file := range files {
		if !file.IsDir() && imageExtensions[strings.ToLower(filepath.Ext(file.Name()))] {
			images = append(images, filepath.Join(sourceDir, file.Name()))
		}
	}
	sort.Strings(images)

	if len(images) == 0 {
		log.Printf("No images found in '%s'. Nothing to bootstrap.", sourceDir)
		return nil
	}

	manifest, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if manifest.OutputDir == "" {
		manifest.OutputDir = outputDir
	}
	known := make(map[string]bool)
	for _, job := range manifest.Jobs {
		known[job.Image] = true
	}

	added := 0
	for _, image := range images {
		if known[image] {
			log.Printf("Image '%s' already exists in configuration.", image)
			continue
		}
		job := structs.Job{Image: image, Identifier: utils.IdentifierFromPath(image)}
		log.Printf("Adding image '%s' as '%s'.", image, job.Identifier)
		manifest.Jobs = append(manifest.Jobs, job)
		added++
	}

	if added == 0 {
		log.Println("No configuration changes needed.")
		return nil
	}
	if err := ValidateJobs(manifest.Jobs, manifest.OutputDir); err != nil {
		return err
	}
	if err := config.SaveConfig(configPath, manifest); err != nil {
		return err
	}
	log.Printf("Configuration file %s updated (%d image(s) added).", configPath, added)
	return nil
}
