package cli

import (
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Training progression commands",
	}

	cmd.AddCommand(newUserGetCmd())
	cmd.AddCommand(newUserTrainCmd())
	cmd.AddCommand(newUserRestCmd())
	cmd.AddCommand(newUserPurchaseCmd())
	cmd.AddCommand(newUserSessionsCmd())
	cmd.AddCommand(newUserRecordCmd())

	return cmd
}

// ownUserID resolves the authenticated user's id
func ownUserID() (string, error) {
	var me User
	if err := client.Get("/api/v1/auth/me", &me); err != nil {
		return "", err
	}
	return me.ID, nil
}

func newUserGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a user's progression (defaults to your own)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				var err error
				if id, err = ownUserID(); err != nil {
					return err
				}
			}

			var result User
			if err := client.Get("/api/v1/users/"+id, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserTrainCmd() *cobra.Command {
	var stat string
	var amount int

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train one stat by an amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ownUserID()
			if err != nil {
				return err
			}

			req := map[string]any{"stat": stat, "amount": amount}
			var result User

			if err := client.Post("/api/v1/users/"+id+"/train", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&stat, "stat", "", "Stat to train: STRENGTH, ENDURANCE, FLEXIBILITY (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount to train by (required)")
	_ = cmd.MarkFlagRequired("stat")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newUserRestCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Rest, lowering all stats by an amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ownUserID()
			if err != nil {
				return err
			}

			req := map[string]any{"amount": amount}
			var result User

			if err := client.Post("/api/v1/users/"+id+"/rest", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Amount to rest by (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newUserPurchaseCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Purchase the accessory (requires all stats at 100)",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ownUserID()
			if err != nil {
				return err
			}

			req := map[string]string{"accessory_name": name}
			var result Accessory

			if err := client.Post("/api/v1/users/"+id+"/purchase", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Accessory name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List your training session log",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ownUserID()
			if err != nil {
				return err
			}

			var result []TrainingSession
			if err := client.Get("/api/v1/users/"+id+"/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserRecordCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a free-text training session",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ownUserID()
			if err != nil {
				return err
			}

			req := map[string]string{"description": description}
			var result TrainingSession

			if err := client.Post("/api/v1/users/"+id+"/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Session description (required)")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
