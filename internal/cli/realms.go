package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRealmsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "realms",
		Short: "Realm commands",
	}

	cmd.AddCommand(newRealmsListCmd())
	cmd.AddCommand(newRealmsGetCmd())
	cmd.AddCommand(newRealmsInviteCmd())
	cmd.AddCommand(newRealmsOpenCmd())
	cmd.AddCommand(newRealmsCloseCmd())
	cmd.AddCommand(newRealmsRenameCmd())
	cmd.AddCommand(newRealmsDescribeCmd())
	cmd.AddCommand(newRealmsAddressCmd())

	return cmd
}

func newRealmsListCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List realms visible to the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var views []RealmView

			if owner != "" {
				realms, err := client.Realms.GetByOwnerXuid(cmd.Context(), owner)
				if err != nil {
					return err
				}
				for _, r := range realms {
					views = append(views, newRealmView(r))
				}
			} else {
				realms, err := client.Realms.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range realms {
					views = append(views, newRealmView(r))
				}
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(views)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Only realms owned by this xuid")

	return cmd
}

func newRealmsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <realm-id>",
		Short: "Show a realm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(newRealmView(r))
			return nil
		},
	}
}

func newRealmsInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite <code>",
		Short: "Show the realm behind an invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := client.Realms.GetByInviteCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(newRealmView(r))
			return nil
		},
	}
}

func newRealmsOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <realm-id>",
		Short: "Open a realm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.Open(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Realm %d opened", r.ID()))
			return nil
		},
	}
}

func newRealmsCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <realm-id>",
		Short: "Close a realm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.Close(cmd.Context()); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Realm %d closed", r.ID()))
			return nil
		},
	}
}

func newRealmsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <realm-id> <name>",
		Short: "Rename a realm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.Rename(cmd.Context(), args[1]); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Realm %d renamed to %q", r.ID(), args[1]))
			return nil
		},
	}
}

func newRealmsDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <realm-id> <description>",
		Short: "Change a realm's description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := r.SetDescription(cmd.Context(), args[1]); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Realm %d description updated", r.ID()))
			return nil
		},
	}
}

func newRealmsAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <realm-id>",
		Short: "Show the address clients join",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := getRealm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			addr, err := r.Address(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(addr)
			return nil
		},
	}
}
