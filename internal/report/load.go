package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a report file and decodes its feature records. The report is
// decoded in full; nothing is streamed.
func Load(path string) ([]Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	var features []Feature
	if err := json.NewDecoder(f).Decode(&features); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return features, nil
}
