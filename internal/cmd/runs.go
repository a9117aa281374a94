package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RunsCmd lists the runs recorded in the result store
type RunsCmd struct {
	DB string `help:"SQLite database to read (default: storage.db_path)" type:"path"`
}

// Run executes the runs command
func (r *RunsCmd) Run(cli *CLI) error {
	store, err := cli.Container.Store(r.DB)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("no result store configured (use --db or storage.db_path)")
	}

	runs, err := store.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{run.ID, run.Command, run.Project, run.CreatedAt.Local().Format("2006-01-02 15:04:05")}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "COMMAND", "PROJECT", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(t.String())
	return nil
}
