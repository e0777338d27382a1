package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/query"
)

func assessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assess [id]",
		Short: "Show completion risk for active assignments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			var assignments []assignment.Assignment
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				a, err := sess.Assignments.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				assignments = []assignment.Assignment{*a}
			} else {
				assignments, err = sess.Assignments.ListActive(cmd.Context())
				if err != nil {
					return err
				}
			}
			if len(assignments) == 0 {
				fmt.Println("no assignments to assess")
				return nil
			}

			now := sess.Now()
			for _, a := range assignments {
				as, err := sess.Scorer.Assess(a, now)
				if err != nil {
					return err
				}
				flag := ""
				if as.Overdue {
					flag = " (overdue)"
				}
				fmt.Printf("%d\t%s\t%s\tscore %.2f%s\n", a.ID, a.Title, as.Class, as.Score, flag)
				for _, f := range as.Factors {
					fmt.Printf("\t  %s: %.2f (weight %.2f)\n", f.Name, f.Value, f.Weight)
				}
			}
			return nil
		},
	}
}

func planCmd() *cobra.Command {
	var hoursPerDay float64

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Produce an ordered work schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			if hoursPerDay == 0 {
				hoursPerDay = sess.Config.Plan.DailyHoursBudget
			}

			assignments, err := sess.Assignments.ListActive(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := sess.Planner.Plan(assignments, hoursPerDay, sess.Now())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("nothing to schedule")
				return nil
			}

			for _, e := range entries {
				flag := ""
				if e.Overdue {
					flag = " (overdue)"
				}
				fmt.Printf("#%d\tassignment %d\t%s - %s\t%.1fh\t%s%s\n",
					e.Rank, e.AssignmentID,
					e.Start.Format("Mon 15:04"), e.End.Format("Mon 15:04"),
					e.AllocatedHours, e.Class, flag)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&hoursPerDay, "hours", 0, "daily hours budget (default from config)")
	return cmd
}

func searchCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "search [notes|assignments]",
		Short: "Filter entities with a predicate spec",
		Long: `Filter entities with a restricted predicate spec.

Recognized filters (repeat --filter):
  text_contains=field:substring
  tag_in=a,b
  date_range=from..to
  status_in=pending,in_progress,completed,overdue   (assignments only)
  priority_in=low,high | 1..5
  sort=title|created_at|due_date|priority`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := query.ParseSpec(filters)
			if err != nil {
				return err
			}

			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			switch args[0] {
			case "notes":
				all, err := sess.Notes.List(cmd.Context(), note.ListOptions{})
				if err != nil {
					return err
				}
				matches, err := query.Notes(all, spec)
				if err != nil {
					return err
				}
				if len(matches) == 0 {
					fmt.Println("no matches")
					return nil
				}
				for _, n := range matches {
					fmt.Printf("%d\t[%s/%s]\t%s\n", n.ID, n.Category, n.Priority, n.Title)
				}
				return nil
			case "assignments":
				all, err := sess.Assignments.List(cmd.Context(), assignment.ListOptions{})
				if err != nil {
					return err
				}
				now := sess.Now()
				matches, err := query.Assignments(all, spec, now)
				if err != nil {
					return err
				}
				if len(matches) == 0 {
					fmt.Println("no matches")
					return nil
				}
				for _, a := range matches {
					fmt.Printf("%d\t[%s]\t%s\tdue %s\t%s\n",
						a.ID, a.Subject, a.Title, a.DueDate.Format("2006-01-02"), a.EffectiveStatus(now))
				}
				return nil
			default:
				return fmt.Errorf("unknown collection %q, expected notes or assignments", args[0])
			}
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter expression key=value")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize tracked data",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			notes, err := sess.Notes.List(cmd.Context(), note.ListOptions{})
			if err != nil {
				return err
			}
			assignments, err := sess.Assignments.List(cmd.Context(), assignment.ListOptions{})
			if err != nil {
				return err
			}

			completed, pending, overdue := 0, 0, 0
			totalHours := 0.0
			now := sess.Now()
			for _, a := range assignments {
				switch a.EffectiveStatus(now) {
				case assignment.StatusCompleted:
					completed++
				case assignment.StatusOverdue:
					overdue++
					totalHours += a.EstimatedHours
				default:
					pending++
					totalHours += a.EstimatedHours
				}
			}

			fmt.Printf("notes: %d\n", len(notes))
			fmt.Printf("assignments: %d (%d completed, %d pending, %d overdue)\n",
				len(assignments), completed, pending, overdue)
			if totalHours > 0 {
				fmt.Printf("outstanding work: %.1fh estimated\n", totalHours)
			}
			return nil
		},
	}
}
