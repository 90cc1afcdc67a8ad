package cmd

import (
	"fmt"

	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/marcus/wingsfly/internal/output"
	"github.com/spf13/cobra"
)

// dayOptions controls how a day is printed
type dayOptions struct {
	JSON   bool
	Tags   bool
	Status bool
}

type dayJSON struct {
	Label string     `json:"label"`
	Day   int        `json:"day"`
	Tasks []taskJSON `json:"tasks"`
}

type taskJSON struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Time     string   `json:"time"`
	Status   string   `json:"status"`
	Tags     []string `json:"tags,omitempty"`
	Progress string   `json:"progress,omitempty"`
}

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"ls"},
	Short:   "Print the tasks for a day of the week",
	Example: `  wingsfly tasks
  wingsfly tasks --date 20 --tags
  wingsfly tasks --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, _ := cmd.Flags().GetInt("date")
		if !cmd.Flags().Changed("date") {
			day = defaultDay()
		}
		opts := dayOptions{}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Tags, _ = cmd.Flags().GetBool("tags")
		opts.Status, _ = cmd.Flags().GetBool("status")
		return printDay(day, opts)
	},
}

func init() {
	tasksCmd.Flags().Int("date", 0, "day of month to show (default: the selected day)")
	tasksCmd.Flags().Bool("json", false, "print JSON")
	tasksCmd.Flags().Bool("tags", false, "show tags")
	tasksCmd.Flags().Bool("status", true, "show task status")
	rootCmd.AddCommand(tasksCmd)
}

// defaultDay is the day the picker starts on
func defaultDay() int {
	for _, d := range mockdata.Dates() {
		if d.Selected {
			return d.Value
		}
	}
	return 0
}

// findDate looks up day in the picker's week
func findDate(dates []models.DateEntry, day int) (models.DateEntry, error) {
	for _, d := range dates {
		if d.Value == day {
			return d, nil
		}
	}
	if len(dates) == 0 {
		return models.DateEntry{}, fmt.Errorf("no dates available")
	}
	return models.DateEntry{}, fmt.Errorf("day %d is not in this week (%d-%d)", day, dates[0].Value, dates[len(dates)-1].Value)
}

func printDay(day int, opts dayOptions) error {
	date, err := findDate(mockdata.Dates(), day)
	if err != nil {
		return err
	}
	tasks := mockdata.Tasks()

	if opts.JSON {
		return output.JSON(toDayJSON(date, tasks))
	}
	fmt.Fprintln(output.Stdout, output.RenderDay(date, tasks, output.TreeRenderOptions{
		ShowStatus: opts.Status,
		ShowTags:   opts.Tags,
	}))
	return nil
}

func toDayJSON(date models.DateEntry, tasks []models.Task) dayJSON {
	out := dayJSON{Label: date.Label, Day: date.Value, Tasks: make([]taskJSON, 0, len(tasks))}
	for _, t := range tasks {
		tj := taskJSON{
			ID:       t.ID,
			Title:    t.Title,
			Time:     t.Time,
			Status:   string(t.Status),
			Progress: t.Progress,
		}
		for _, tag := range t.Tags {
			tj.Tags = append(tj.Tags, string(tag))
		}
		out.Tasks = append(out.Tasks, tj)
	}
	return out
}
