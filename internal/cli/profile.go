package cli

import (
	"github.com/spf13/cobra"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

func newProfileCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:   "profile <xuid>",
		Short: "Show an Xbox profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				user model.UserSettings
				err  error
			)
			if byName {
				user, err = client.Realms.ProfileByGamertag(cmd.Context(), args[0])
			} else {
				user, err = client.Realms.Profile(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(newProfileView(user))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byName, "name", false, "Treat the argument as a gamertag")

	return cmd
}
