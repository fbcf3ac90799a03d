package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MCBE-Utilities/BeRAPI/internal/services/realm"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Realm player commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())
	cmd.AddCommand(newPlayersOwnerCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	var online, offline, profiles bool

	cmd := &cobra.Command{
		Use:   "list <realm-id>",
		Short: "List a realm's players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := getRealm(ctx, args[0])
			if err != nil {
				return err
			}

			var players []*realm.Player
			switch {
			case online:
				players, err = r.Players().GetAllOnline(ctx)
			case offline:
				players, err = r.Players().GetAllOffline(ctx)
			default:
				players, err = r.Players().GetAll(ctx)
			}
			if err != nil {
				return err
			}

			views := make([]PlayerView, 0, len(players))
			for _, p := range players {
				view, err := playerView(ctx, p, profiles)
				if err != nil {
					return err
				}
				views = append(views, view)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(views)
			return nil
		},
	}

	cmd.Flags().BoolVar(&online, "online", false, "Only online players")
	cmd.Flags().BoolVar(&offline, "offline", false, "Only offline players")
	cmd.Flags().BoolVar(&profiles, "profiles", false, "Look up gamertags")
	cmd.MarkFlagsMutuallyExclusive("online", "offline")

	return cmd
}

func newPlayersGetCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "get <realm-id> <xuid>",
		Short: "Show one of a realm's players",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := getRealm(ctx, args[0])
			if err != nil {
				return err
			}

			var p *realm.Player
			if byName {
				p, err = r.Players().GetByName(ctx, args[1])
			} else {
				p, err = r.Players().GetByXuid(ctx, args[1])
			}
			if err != nil {
				return err
			}

			view, err := playerView(ctx, p, true)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(view)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the second argument as a gamertag")

	return cmd
}

func newPlayersOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner <realm-id>",
		Short: "Show a realm's owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			owner, err := r.Players().GetOwner(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(OwnerView{Xuid: owner.Xuid, Name: owner.Name})
			return nil
		},
	}
}

func playerView(ctx context.Context, p *realm.Player, withProfile bool) (PlayerView, error) {
	view := newPlayerView(p)
	if withProfile {
		name, err := p.Gamertag(ctx)
		if err != nil {
			return PlayerView{}, err
		}
		view.Gamertag = name
	}
	return view, nil
}
