package main

import (
	"github.com/spf13/cobra"
)

// buildRoot assembles the CLI: a serve command running the supervisor daemon
// and remote commands that talk to a running daemon over HTTP.
func buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "procwatch",
		Short:         "procwatch supervises external processes and restarts them when they die",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveFlags := &ServeFlags{}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the supervisor daemon with its HTTP control surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(serveFlags)
		},
	}
	serveCmd.Flags().StringVarP(&serveFlags.ConfigPath, "config", "c", "config.json", "configuration file")
	serveCmd.Flags().StringVar(&serveFlags.Listen, "listen", "", "listen address (overrides config)")
	root.AddCommand(serveCmd)

	clientFlags := &ClientFlags{}
	addClientFlags := func(cmd *cobra.Command) *cobra.Command {
		cmd.Flags().StringVar(&clientFlags.APIUrl, "api-url", "http://localhost:8110", "daemon API base URL")
		cmd.Flags().DurationVar(&clientFlags.APITimeout, "api-timeout", 0, "request timeout")
		cmd.Flags().BoolVar(&clientFlags.Insecure, "insecure", false, "skip TLS certificate verification")
		return cmd
	}

	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "status",
		Short: "List every configured process and its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(clientFlags)
		},
	}))
	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "start NAME",
		Short: "Start a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(clientFlags, "start", args[0])
		},
	}))
	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "stop NAME",
		Short: "Stop a process and suppress its automatic restart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(clientFlags, "stop", args[0])
		},
	}))
	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "restart NAME",
		Short: "Restart a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(clientFlags, "restart", args[0])
		},
	}))
	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "pull NAME",
		Short: "Run git pull in a process's working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGitPull(clientFlags, args[0])
		},
	}))
	root.AddCommand(addClientFlags(&cobra.Command{
		Use:   "reload",
		Short: "Ask the daemon to re-read its configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReload(clientFlags)
		},
	}))

	return root
}
