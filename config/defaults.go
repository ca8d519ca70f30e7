package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"ImageHeaders/structs"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// rawManifest defers job decoding to mapstructure so that numeric and
// expression dimensions can share one string field.
type rawManifest struct {
	OutputDir string                   `yaml:"outputDir"`
	Jobs      []map[string]interface{} `yaml:"jobs"`
}

// LoadConfig reads and parses a job manifest. JSON manifests (as written by
// SaveConfig) are accepted too since JSON is valid YAML.
func LoadConfig(configPath string) (*structs.Manifest, error) {
	manifest := &structs.Manifest{}
	configData, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Configuration file '%s' not found. Returning empty configuration.", configPath)
			return manifest, nil
		}
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", configPath, err)
	}

	var raw rawManifest
	if err := yaml.Unmarshal(configData, &raw); err != nil {
		if yamlErr, ok := err.(*yaml.TypeError); ok {
			for _, msg := range yamlErr.Errors {
				log.Printf("YAML unmarshal error in %s: %s", configPath, msg)
			}
		}
		return nil, fmt.Errorf("failed to parse configuration file '%s': %w", configPath, err)
	}

	manifest.OutputDir = raw.OutputDir
	for i, entry := range raw.Jobs {
		job, err := decodeJob(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to decode job %d in '%s': %w", i+1, configPath, err)
		}
		manifest.Jobs = append(manifest.Jobs, job)
	}
	log.Printf("Loaded %d job(s) from %s.", len(manifest.Jobs), configPath)
	return manifest, nil
}

func decodeJob(entry map[string]interface{}) (structs.Job, error) {
	var job structs.Job
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &job,
	})
	if err != nil {
		return job, err
	}
	if err := decoder.Decode(entry); err != nil {
		return job, err
	}
	return job, nil
}

// SaveConfig writes the manifest back as indented JSON.
func SaveConfig(configPath string, manifest *structs.Manifest) error {
	// Sort jobs by identifier for consistency before saving
	sorted := *manifest
	sorted.Jobs = append([]structs.Job(nil), manifest.Jobs...)
	sort.Slice(sorted.Jobs, func(i, j int) bool {
		return sorted.Jobs[i].Identifier < sorted.Jobs[j].Identifier
	})

	updatedConfigData, err := json.MarshalIndent(&sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal updated configuration: %w", err)
	}
	err = os.WriteFile(configPath, append(updatedConfigData, '\n'), 0644)
	if err != nil {
		return fmt.Errorf("failed to write updated configuration file '%s': %w", configPath, err)
	}
	return nil
}
