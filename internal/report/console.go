package report

import (
	"fmt"
	"sort"

	"github.com/ousposer/ousposer/internal/patterns"
)

// PrintPatternAnalysis prints the point-count distribution grouped by
// cluster size.
func PrintPatternAnalysis(rows []patterns.PatternCount) {
	fmt.Println("\n========== Component Patterns ==========")
	fmt.Println("Point count patterns by bench type:")

	lastComponentCount := -1
	for _, row := range rows {
		if row.ComponentCount != lastComponentCount {
			fmt.Printf("\n%d-component benches:\n", row.ComponentCount)
			lastComponentCount = row.ComponentCount
		}
		fmt.Printf("  %d points: %d components\n", row.PointCount, row.Count)
	}
	fmt.Println("========================================")
}

// PrintSpatialAnalysis prints the inter-component distance statistics
// aggregated per cluster size.
func PrintSpatialAnalysis(rows []patterns.ClusterSpacing) {
	fmt.Println("\n========== Spatial Relationships ==========")
	if len(rows) == 0 {
		fmt.Println("No multi-component clusters with at least two joined components.")
		fmt.Println("===========================================")
		return
	}

	byCount := make(map[int][]patterns.ClusterSpacing)
	for _, row := range rows {
		byCount[row.ComponentCount] = append(byCount[row.ComponentCount], row)
	}

	counts := make([]int, 0, len(byCount))
	for cc := range byCount {
		counts = append(counts, cc)
	}
	sort.Ints(counts)

	fmt.Println("Distance statistics by component count:")
	for _, cc := range counts {
		subset := byCount[cc]
		mins := make([]float64, len(subset))
		maxes := make([]float64, len(subset))
		means := make([]float64, len(subset))
		for i, s := range subset {
			mins[i] = s.MinDistanceM
			maxes[i] = s.MaxDistanceM
			means[i] = s.MeanDistanceM
		}
		minD := patterns.Summarise(mins)
		maxD := patterns.Summarise(maxes)
		meanD := patterns.Summarise(means)

		fmt.Printf("\n%d-component benches (%d examples):\n", cc, len(subset))
		fmt.Printf("  Min distance: %.2fm ± %.2fm\n", minD.Mean, minD.Std)
		fmt.Printf("  Max distance: %.2fm ± %.2fm\n", maxD.Mean, maxD.Std)
		fmt.Printf("  Mean distance: %.2fm ± %.2fm\n", meanD.Mean, meanD.Std)
	}
	fmt.Println("===========================================")
}

// PrintCanonicalDimensions prints the per-point-count envelope profiles,
// including the tolerance bands and a few individual examples.
func PrintCanonicalDimensions(profiles map[int]patterns.DimensionProfile, components []patterns.BenchComponent) {
	fmt.Println("\n========== Canonical Dimensions ==========")

	for _, pc := range patterns.SortedPointCounts(profiles) {
		p := profiles[pc]
		fmt.Printf("\n%d-point single benches (%d examples):\n", pc, p.Count)
		fmt.Printf("  Envelope Length: %.2fm ± %.2fm (range: %.2f-%.2fm)\n",
			p.EnvelopeLength.Mean, p.EnvelopeLength.Std, p.EnvelopeLength.Min, p.EnvelopeLength.Max)
		fmt.Printf("  Envelope Width: %.2fm ± %.2fm (range: %.2f-%.2fm)\n",
			p.EnvelopeWidth.Mean, p.EnvelopeWidth.Std, p.EnvelopeWidth.Min, p.EnvelopeWidth.Max)
		fmt.Printf("  Aspect Ratio: %.3f ± %.3f (range: %.3f-%.3f)\n",
			p.AspectRatio.Mean, p.AspectRatio.Std, p.AspectRatio.Min, p.AspectRatio.Max)
		fmt.Printf("  Total Length: %.2fm ± %.2fm\n", p.TotalLength.Mean, p.TotalLength.Std)
		fmt.Printf("  Tolerance band - Envelope Length: ±%.3fm, Width: ±%.3fm\n",
			p.EnvelopeLengthTolerance, p.EnvelopeWidthTolerance)

		fmt.Println("  Individual examples:")
		shown := 0
		for _, c := range components {
			if c.Cluster.ComponentCount != 1 || c.PointCount != pc {
				continue
			}
			shown++
			fmt.Printf("    #%d: objectid=%d, L=%.2fm, W=%.2fm, AR=%.3f\n",
				shown, c.ObjectID, c.EnvelopeLengthM, c.EnvelopeWidthM, c.AspectRatio)
			if shown == 3 {
				break
			}
		}
	}
	fmt.Println("==========================================")
}

// PrintBaseline prints the manual validation baseline.
func PrintBaseline(baseline patterns.Baseline) {
	fmt.Println("\n========== Validation Baseline ==========")
	fmt.Printf("Total bench clusters: %d\n", baseline.ManualClusters)
	fmt.Printf("Total bench components: %d\n", baseline.ManualComponents)

	fmt.Println("Component count distribution:")
	for _, cc := range sortedKeys(baseline.ComponentCounts) {
		fmt.Printf("  %d-component: %d benches\n", cc, baseline.ComponentCounts[cc])
	}

	fmt.Println("Arrondissement distribution:")
	for _, arr := range sortedKeys(baseline.Arrondissements) {
		fmt.Printf("  Arr %d: %d benches\n", arr, baseline.Arrondissements[arr])
	}
	fmt.Println("=========================================")
}

// PrintComparison prints the overlap diagnostics against an external
// detection run.
func PrintComparison(m patterns.ComparisonMetrics) {
	fmt.Println("\n========== Detection Comparison ==========")
	fmt.Printf("Detected benches: %d (%d components)\n", m.DetectedBenches, m.DetectedComponents)
	fmt.Printf("True positives (overlap): %d components\n", m.TruePositives)
	fmt.Printf("False negatives (manual only): %d components\n", m.FalseNegatives)
	fmt.Printf("Potential false positives (detected only): %d components\n", m.PotentialFalsePositives)
	fmt.Printf("Recall: %.2f%%\n", m.Recall*100)
	fmt.Printf("Precision: %.2f%%\n", m.Precision*100)
	fmt.Println("==========================================")
}

// PrintSummary prints the headline counts of the run.
func PrintSummary(s Summary) {
	fmt.Println("\n========== Analysis Summary ==========")
	fmt.Printf("Bench components: %d\n", s.TotalBenchComponents)
	fmt.Printf("Unique clusters: %d\n", s.UniqueClusters)
	fmt.Println("Components by cluster size:")
	for _, cc := range sortedKeys(s.ComponentCounts) {
		fmt.Printf("  %d-component: %d\n", cc, s.ComponentCounts[cc])
	}
	fmt.Println("======================================")
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
