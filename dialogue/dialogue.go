package dialogue

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ImageHeaders/structs"
	"ImageHeaders/utils"
)

// ShowJobSelection lists the manifest's jobs on out and reads a comma
// separated selection from in. An empty answer selects every job.
func ShowJobSelection(in io.Reader, out io.Writer, jobs []structs.Job) ([]structs.Job, error) {
	if len(jobs) == 0 {
		return []structs.Job{}, nil
	}
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "\nConfigured images:")
	for i, job := range jobs {
		fmt.Fprintf(out, "%d. %s (%s -> %s)\n", i+1, job.Identifier, job.Image, utils.HeaderFileName(job.Identifier))
	}

	fmt.Fprint(out, "\nSelect image(s) to convert (e.g., 1,3,4), or press Enter for all: ")
	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return jobs, nil
	}

	var selectedJobs []structs.Job
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > len(jobs) {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, len(jobs))
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selectedJobs = append(selectedJobs, jobs[idx-1])
	}
	return selectedJobs, nil
}
