package cli

import (
	"github.com/spf13/cobra"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Routine commands",
	}

	cmd.AddCommand(newRoutineListCmd())
	cmd.AddCommand(newRoutineGetCmd())
	cmd.AddCommand(newRoutineCreateCmd())
	cmd.AddCommand(newRoutineUpdateCmd())
	cmd.AddCommand(newRoutineDeleteCmd())

	return cmd
}

func newRoutineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Routine
			if err := client.Get("/api/v1/routines", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoutineGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one of your routines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Routine
			if err := client.Get("/api/v1/routines/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoutineCreateCmd() *cobra.Command {
	var name string
	var exercises []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"exercise_ids": exercises,
			}
			var result Routine

			if err := client.Post("/api/v1/routines", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Routine name (required)")
	cmd.Flags().StringSliceVar(&exercises, "exercise", nil, "Exercise id (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoutineUpdateCmd() *cobra.Command {
	var name string
	var exercises []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your routines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"exercise_ids": exercises,
			}
			var result Routine

			if err := client.Put("/api/v1/routines/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Routine name (required)")
	cmd.Flags().StringSliceVar(&exercises, "exercise", nil, "Exercise id (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoutineDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your routines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/routines/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Routine deleted")
			return nil
		},
	}
}
