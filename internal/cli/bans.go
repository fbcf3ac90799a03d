package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MCBE-Utilities/BeRAPI/internal/services/realm"
)

func newBansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bans",
		Short: "Realm block list commands",
	}

	cmd.AddCommand(newBansListCmd())
	cmd.AddCommand(newBansAddCmd())
	cmd.AddCommand(newBansRemoveCmd())

	return cmd
}

func newBansListCmd() *cobra.Command {
	var profiles bool

	cmd := &cobra.Command{
		Use:   "list <realm-id>",
		Short: "List banned players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := getRealm(ctx, args[0])
			if err != nil {
				return err
			}
			banned, err := r.BanList(ctx)
			if err != nil {
				return err
			}

			views := make([]BannedView, 0, len(banned))
			for _, b := range banned {
				view := BannedView{Xuid: b.Xuid()}
				if profiles {
					if view.Gamertag, err = b.Gamertag(ctx); err != nil {
						return err
					}
				}
				views = append(views, view)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(views)
			return nil
		},
	}

	cmd.Flags().BoolVar(&profiles, "profiles", false, "Look up gamertags")

	return cmd
}

func newBansAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <realm-id> <xuid>",
		Short: "Ban a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.Ban(cmd.Context(), realm.Xuid(args[1])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Banned %s from realm %d", args[1], r.ID()))
			return nil
		},
	}
}

func newBansRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <realm-id> <xuid>",
		Short: "Lift a player's ban",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.Unban(cmd.Context(), realm.Xuid(args[1])); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Unbanned %s from realm %d", args[1], r.ID()))
			return nil
		},
	}
}
