// Package rundb persists analysis runs and their per-component features to
// a SQLite database so successive calibration rounds can be compared.
package rundb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ousposer/ousposer/internal/patterns"
	"github.com/ousposer/ousposer/internal/report"
)

const schema = `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		run_id TEXT PRIMARY KEY,
		run_time TEXT NOT NULL,
		raw_path TEXT NOT NULL,
		clusters_path TEXT NOT NULL,
		bench_components INTEGER,
		unique_clusters INTEGER,
		manual_clusters INTEGER,
		manual_components INTEGER
	);

	CREATE TABLE IF NOT EXISTS bench_components (
		run_id TEXT NOT NULL,
		objectid INTEGER NOT NULL,
		point_count INTEGER,
		length_m REAL,
		envelope_length_m REAL,
		envelope_width_m REAL,
		aspect_ratio REAL,
		cluster_id INTEGER,
		component_count INTEGER,
		arrondissement INTEGER,
		PRIMARY KEY (run_id, objectid),
		FOREIGN KEY (run_id) REFERENCES analysis_runs(run_id)
	);
`

// PersistRun stores one analysis run and its joined component set.
// Returns the generated run id.
func PersistRun(dbPath, rawPath, clustersPath string, artifact *report.Artifact, comps []patterns.BenchComponent) (string, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return "", fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return "", fmt.Errorf("create schema: %w", err)
	}

	runID := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO analysis_runs (run_id, run_time, raw_path, clusters_path, bench_components, unique_clusters, manual_clusters, manual_components)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC().Format(time.RFC3339),
		rawPath,
		clustersPath,
		artifact.Summary.TotalBenchComponents,
		artifact.Summary.UniqueClusters,
		artifact.ValidationPatterns.Baseline.ManualClusters,
		artifact.ValidationPatterns.Baseline.ManualComponents,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bench_components
		(run_id, objectid, point_count, length_m, envelope_length_m, envelope_width_m, aspect_ratio, cluster_id, component_count, arrondissement)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare component insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range comps {
		_, err := stmt.Exec(runID, c.ObjectID, c.PointCount, c.PathLengthM,
			c.EnvelopeLengthM, c.EnvelopeWidthM, c.AspectRatio,
			c.Cluster.ClusterID, c.Cluster.ComponentCount, c.Cluster.Arrondissement)
		if err != nil {
			return "", fmt.Errorf("insert component %d: %w", c.ObjectID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}

	return runID, nil
}

// CountRuns returns the number of persisted analysis runs.
func CountRuns(dbPath string) (int, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM analysis_runs`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}
