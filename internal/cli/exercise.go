package cli

import (
	"github.com/spf13/cobra"
)

func newExerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Exercise catalog commands",
	}

	cmd.AddCommand(newExerciseListCmd())
	cmd.AddCommand(newExerciseGetCmd())
	cmd.AddCommand(newExerciseCreateCmd())
	cmd.AddCommand(newExerciseUpdateCmd())
	cmd.AddCommand(newExerciseDeleteCmd())

	return cmd
}

func newExerciseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the exercise catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Exercise
			if err := client.Get("/api/v1/exercises", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newExerciseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Exercise
			if err := client.Get("/api/v1/exercises/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func exerciseFlags(cmd *cobra.Command, name, description, category *string, strength, endurance, flexibility *int) {
	cmd.Flags().StringVar(name, "name", "", "Exercise name (required)")
	cmd.Flags().StringVar(description, "description", "", "Exercise description")
	cmd.Flags().StringVar(category, "category", "", "Exercise category")
	cmd.Flags().IntVar(strength, "strength-impact", 0, "Strength impact")
	cmd.Flags().IntVar(endurance, "endurance-impact", 0, "Endurance impact")
	cmd.Flags().IntVar(flexibility, "flexibility-impact", 0, "Flexibility impact")
	_ = cmd.MarkFlagRequired("name")
}

func newExerciseCreateCmd() *cobra.Command {
	var name, description, category string
	var strength, endurance, flexibility int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an exercise (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":               name,
				"description":        description,
				"category":           category,
				"strength_impact":    strength,
				"endurance_impact":   endurance,
				"flexibility_impact": flexibility,
			}
			var result Exercise

			if err := client.Post("/api/v1/exercises", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	exerciseFlags(cmd, &name, &description, &category, &strength, &endurance, &flexibility)
	return cmd
}

func newExerciseUpdateCmd() *cobra.Command {
	var name, description, category string
	var strength, endurance, flexibility int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an exercise (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":               name,
				"description":        description,
				"category":           category,
				"strength_impact":    strength,
				"endurance_impact":   endurance,
				"flexibility_impact": flexibility,
			}
			var result Exercise

			if err := client.Put("/api/v1/exercises/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	exerciseFlags(cmd, &name, &description, &category, &strength, &endurance, &flexibility)
	return cmd
}

func newExerciseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an exercise (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/exercises/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Exercise deleted")
			return nil
		},
	}
}
