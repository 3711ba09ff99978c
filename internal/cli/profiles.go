package cli

import "github.com/spf13/cobra"

func (a *app) newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile", "p"},
		Short:   "Inspect saved browser profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			profiles, err := client.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer(cmd).profiles(profiles)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get PROFILE_ID",
		Short: "Show one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			profile, err := client.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).profile(profile)
		},
	})

	return cmd
}
