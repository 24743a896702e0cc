package furniture

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadRawComponents reads the street-furniture export and validates each
// record's geometry. The whole file is held in memory; the dataset is a few
// thousand records.
func LoadRawComponents(path string) ([]RawComponent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw components: %w", err)
	}

	var components []RawComponent
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("parse raw components %s: %w", path, err)
	}

	for _, c := range components {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid raw component: %w", err)
		}
	}

	return components, nil
}

// LoadManualClusters reads the manually validated cluster file.
// Clusters may reference component ids absent from the raw dataset; that is
// not an error here — the join in the patterns package silently drops them.
func LoadManualClusters(path string) ([]ManualCluster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manual clusters: %w", err)
	}

	var clusters []ManualCluster
	if err := json.Unmarshal(data, &clusters); err != nil {
		return nil, fmt.Errorf("parse manual clusters %s: %w", path, err)
	}

	for _, c := range clusters {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid manual cluster: %w", err)
		}
	}

	return clusters, nil
}

// LoadDetectionResults reads an external detection-results artifact.
// The format is tolerant: districts without benches and benches without
// components are allowed.
func LoadDetectionResults(path string) ([]DistrictDetections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read detection results: %w", err)
	}

	var results []DistrictDetections
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse detection results %s: %w", path, err)
	}

	return results, nil
}
