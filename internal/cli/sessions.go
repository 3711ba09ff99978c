package cli

import (
	"github.com/spf13/cobra"

	"github.com/exeq-dev/exeq-go"
)

func (a *app) newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session", "s"},
		Short:   "Create, inspect and stop browser sessions",
	}
	cmd.AddCommand(
		a.newSessionsCreateCmd(),
		a.newSessionsGetCmd(),
		a.newSessionsListCmd(),
		a.newSessionsStopCmd(),
		a.newSessionsExtendCmd(),
	)
	return cmd
}

func (a *app) newSessionsCreateCmd() *cobra.Command {
	var (
		opts      exeq.CreateSessionOptions
		recording bool
		proxy     bool
	)

	cmd := &cobra.Command{
		Use:   "create [flags]",
		Short: "Start a new browser session",
		Long: `Start a new browser session.

Only the flags you pass are sent; everything else uses the server defaults.

Examples:
  exeq sessions create
  exeq sessions create --duration 1h --recording
  exeq sessions create --proxy --proxy-country US --proxy-city "New York"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("recording") {
				opts.SessionRecordingEnabled = exeq.Bool(recording)
			}
			if cmd.Flags().Changed("proxy") {
				opts.ResidentialProxyEnabled = exeq.Bool(proxy)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			session, err := client.CreateSession(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			return a.printer(cmd).session(session)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Duration, "duration", "", "Session lifetime, for example 30m")
	f.BoolVar(&recording, "recording", false, "Record the session")
	f.StringVar(&opts.ProfileID, "profile", "", "Profile ID to start from")
	f.BoolVar(&proxy, "proxy", false, "Route traffic through a residential proxy")
	f.StringVar(&opts.ResidentialProxyCountry, "proxy-country", "", "Residential proxy country")
	f.StringVar(&opts.ResidentialProxyState, "proxy-state", "", "Residential proxy state")
	f.StringVar(&opts.ResidentialProxyCity, "proxy-city", "", "Residential proxy city")
	return cmd
}

func (a *app) newSessionsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			session, err := client.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer(cmd).session(session)
		},
	}
}

func (a *app) newSessionsListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:     "list [flags]",
		Aliases: []string{"ls"},
		Short:   "List sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &exeq.ListSessionsOptions{}
			if cmd.Flags().Changed("limit") {
				opts.Limit = exeq.Int(limit)
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = exeq.Int(offset)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			sessions, err := client.ListSessions(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.printer(cmd).sessions(sessions)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of sessions to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of sessions to skip")
	return cmd
}

func (a *app) newSessionsStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop SESSION_ID",
		Short: "Stop a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.StopSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printer(cmd).message(args[0], "stopped")
		},
	}
}

func (a *app) newSessionsExtendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend SESSION_ID DURATION",
		Short: "Extend a session's lifetime",
		Long: `Extend a session's lifetime by DURATION, in the server's duration
format (for example 30m).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			session, err := client.ExtendSession(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.printer(cmd).session(session)
		},
	}
}
