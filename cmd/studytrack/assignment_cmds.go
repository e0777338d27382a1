package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/acortes/studytrack/internal/domain/assignment"
)

func assignmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"a"},
		Short:   "Manage assignments",
	}
	cmd.AddCommand(assignmentAddCmd())
	cmd.AddCommand(assignmentListCmd())
	cmd.AddCommand(assignmentStatusCmd("start", assignment.StatusInProgress, "mark an assignment in progress"))
	cmd.AddCommand(assignmentStatusCmd("pause", assignment.StatusPending, "move an assignment back to pending"))
	cmd.AddCommand(assignmentStatusCmd("done", assignment.StatusCompleted, "mark an assignment completed"))
	cmd.AddCommand(assignmentDeleteCmd())
	return cmd
}

func assignmentAddCmd() *cobra.Command {
	var description, subject, due, tags string
	var priority int
	var hours float64

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an assignment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}

			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			a, err := sess.Assignments.Create(cmd.Context(), assignment.CreateRequest{
				Title:          strings.Join(args, " "),
				Description:    description,
				Subject:        subject,
				DueDate:        dueDate,
				Priority:       priority,
				EstimatedHours: hours,
				Tags:           splitFlagList(tags),
			})
			if err != nil {
				return err
			}

			fmt.Printf("assignment %d created, due %s\n", a.ID, a.DueDate.Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&subject, "subject", "", "subject (open set)")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD or RFC3339 (required)")
	cmd.Flags().IntVar(&priority, "priority", 3, "priority 1-5")
	cmd.Flags().Float64Var(&hours, "hours", 1, "estimated effort in hours")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func assignmentListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			var assignments []assignment.Assignment
			if all {
				assignments, err = sess.Assignments.List(cmd.Context(), assignment.ListOptions{})
			} else {
				assignments, err = sess.Assignments.ListActive(cmd.Context())
			}
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				fmt.Println("no assignments found")
				return nil
			}

			now := sess.Now()
			for _, a := range assignments {
				fmt.Printf("%d\t[%s]\t%s\tdue %s\tP%d\t%.1fh\t%s\n",
					a.ID, a.Subject, a.Title,
					a.DueDate.Format("2006-01-02"), a.Priority, a.EstimatedHours,
					a.EffectiveStatus(now))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include completed assignments")
	return cmd
}

func assignmentStatusCmd(use string, to assignment.Status, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			a, err := sess.Assignments.SetStatus(cmd.Context(), id, to)
			if err != nil {
				return err
			}
			fmt.Printf("assignment %d is now %s\n", a.ID, a.Status)
			return nil
		},
	}
}

func assignmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := sess.Assignments.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("assignment %d deleted\n", id)
			return nil
		},
	}
}

func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("due date is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// bare dates land at end of day local time
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Add(23*time.Hour + 59*time.Minute), nil
	}
	return time.Time{}, fmt.Errorf("invalid due date %q, use YYYY-MM-DD or RFC3339", s)
}
