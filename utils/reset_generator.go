// reset_generator.go
package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// HeaderFileName is the file a job with the given identifier generates.
func HeaderFileName(identifier string) string {
	return identifier + ".h"
}

// TempPattern is the os.CreateTemp pattern used while a header is being written.
func TempPattern(identifier string) string {
	return "." + HeaderFileName(identifier) + ".*.tmp"
}

func isTempFor(name, identifier string) bool {
	prefix := "." + HeaderFileName(identifier) + "."
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".tmp")
}

// Reset removes previously generated headers and abandoned temp files for
// the given identifiers from targetDir. Other files are never touched.
func Reset(targetDir string, identifiers []string) (int, error) {
	log.Printf("Starting generator reset for directory: %s", targetDir)

	dirEntries, err := os.ReadDir(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Directory '%s' does not exist yet, nothing to clean.", targetDir)
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read directory '%s': %w", targetDir, err)
	}

	owned := make(map[string]bool, len(identifiers))
	for _, id := range identifiers {
		owned[HeaderFileName(id)] = true
	}

	filesRemoved := 0
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		entryName := entry.Name()
		remove := owned[entryName]
		if !remove {
			for _, id := range identifiers {
				if isTempFor(entryName, id) {
					remove = true
					break
				}
			}
		}
		if !remove {
			continue
		}
		filePath := filepath.Join(targetDir, entryName)
		log.Printf("  Removing generated file: %s", filePath)
		if err := os.Remove(filePath); err != nil {
			log.Printf("  Warning: Failed to remove file '%s': %v", filePath, err)
		} else {
			filesRemoved++
		}
	}
	log.Printf("Removed %d generated header file(s) from '%s'.", filesRemoved, targetDir)
	return filesRemoved, nil
}
