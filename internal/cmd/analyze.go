package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/mergebench/internal/adapters/csvreport"
	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/services"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// AnalyzeCmd aggregates file merge evaluations into statistics.
// Each results file needs its blob metainfo file (written by
// run-file-merges --gather-metainfo) next to it.
type AnalyzeCmd struct {
	Output  string   `help:"Also write the statistics as CSV" short:"o" type:"path"`
	Results []string `arg:"" help:"Evaluation CSV files named <project>_<anything>.csv" type:"existingfile"`
}

// Run executes the analyze command
func (a *AnalyzeCmd) Run() error {
	var stats []domain.MergeEvaluationStatistics
	for _, resultsFile := range a.Results {
		evals, err := csvreport.Read(resultsFile, csvreport.MergeEvaluationSchema)
		if err != nil {
			return err
		}

		blobs, err := csvreport.Read(services.BlobMetainfoPath(resultsFile), csvreport.JavaBlobMetainfoSchema)
		if err != nil {
			return err
		}

		project := services.ProjectFromResultsFile(resultsFile)
		stats = append(stats, services.ComputeStatistics(project, evals, services.LineCounts(blobs))...)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].MergeCmd < stats[j].MergeCmd
	})

	if a.Output != "" {
		if err := csvreport.Write(a.Output, stats, csvreport.StatisticsSchema); err != nil {
			return err
		}
	}

	fmt.Println(renderStatistics(stats))
	return nil
}

// renderStatistics renders one row per project and merge command
func renderStatistics(stats []domain.MergeEvaluationStatistics) string {
	if len(stats) == 0 {
		return "No evaluations found."
	}

	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			s.Project,
			s.MergeCmd,
			strconv.Itoa(s.NumFileMerges),
			strconv.Itoa(s.NumSuccess),
			strconv.Itoa(s.NumConflict),
			strconv.Itoa(s.NumFail),
			fmt.Sprintf("%.3f", s.GitDiffAvgMagn),
			fmt.Sprintf("%.3f", s.GitDiffAvgAcc),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("PROJECT", "MERGE CMD", "FILE MERGES", "SUCCESS", "CONFLICT", "FAIL", "DIFF MAGNITUDE", "DIFF ACCURACY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}
