package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acortes/studytrack/internal/domain/note"
)

func noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	cmd.AddCommand(noteAddCmd())
	cmd.AddCommand(noteListCmd())
	cmd.AddCommand(noteArchiveCmd())
	cmd.AddCommand(noteDeleteCmd())
	return cmd
}

func noteAddCmd() *cobra.Command {
	var content, priority, category, tags string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := sess.Notes.Create(cmd.Context(), note.CreateRequest{
				Title:    strings.Join(args, " "),
				Content:  content,
				Priority: note.Priority(priority),
				Category: category,
				Tags:     splitFlagList(tags),
			})
			if err != nil {
				return err
			}

			fmt.Printf("note %d created\n", n.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "note body")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium, or high")
	cmd.Flags().StringVar(&category, "category", "", "category (open set)")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	return cmd
}

func noteListCmd() *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, closeFn, err := openSession()
			if err != nil {
				return err
			}
			defer closeFn()

			notes, err := sess.Notes.List(cmd.Context(), note.ListOptions{Archived: &archived})
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println("no notes found")
				return nil
			}

			for _, n := range notes {
				line := fmt.Sprintf("%d\t[%s/%s]\t%s", n.ID, n.Category, n.Priority, n.Title)
				if len(n.Tags) > 0 {
					line += "\t#" + strings.Join(n.Tags, " #")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "show archived notes instead of active ones")
	return cmd
}

func noteArchiveCmd() *cobra.Command {
	var restore bool

	cmd := &cobra.Command{
		Use:   "archive [id]",
		Short: "Archive or restore a note",
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

			n, err := sess.Notes.SetArchived(cmd.Context(), id, !restore)
			if err != nil {
				return err
			}
			if n.Archived {
				fmt.Printf("note %d archived\n", n.ID)
			} else {
				fmt.Printf("note %d restored\n", n.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&restore, "restore", false, "restore instead of archive")
	return cmd
}

func noteDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
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

			if err := sess.Notes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("note %d deleted\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func splitFlagList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
