package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

func displayRunStats(runID uuid.UUID, result *renderer.Result) {
	logger.Noticef("run %s statistics\n%s", runID, runStatsTable(result))
}

func runStatsTable(result *renderer.Result) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})

	stats := result.Stats
	table.AppendBulk([][]string{
		{"Passes", fmt.Sprintf("%d of %d", result.PassesCompleted, result.PassBudget)},
		{"Stopped", result.Stopped.String()},
		{"Sampled pixels", fmt.Sprintf("%d of %d", stats.SampledPixels, stats.TotalPixels)},
		{"Samples", fmt.Sprintf("%d", stats.TotalSamples)},
		{"Max dispersion", fmt.Sprintf("%f", stats.MaxDispersion)},
		{"Min dispersion", fmt.Sprintf("%f", stats.MinDispersion)},
		{"Mean dispersion", fmt.Sprintf("%f", stats.MeanDispersion)},
		{"Checkpoints", fmt.Sprintf("%d written, %d failed", result.CheckpointsWritten, result.CheckpointsFailed)},
		{"Outputs", strings.Join(result.Outputs, "\n")},
	})
	table.SetFooter([]string{"TOTAL", result.Elapsed.String()})

	table.Render()
	return buf.String()
}
