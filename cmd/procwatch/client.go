package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/procwatch/procwatch/pkg/client"
)

func newClient(flags *ClientFlags) *client.Client {
	cfg := client.DefaultConfig()
	if flags.APIUrl != "" {
		cfg.BaseURL = flags.APIUrl
	}
	if flags.APITimeout > 0 {
		cfg.Timeout = flags.APITimeout
	}
	cfg.Insecure = flags.Insecure
	return client.New(cfg)
}

func runStatus(flags *ClientFlags) error {
	c := newClient(flags)
	statuses, err := c.Statuses(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSTATE\tPID")
	for _, st := range statuses {
		pid := ""
		if st.PID != 0 {
			pid = fmt.Sprintf("%d", st.PID)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", st.Name, st.State, pid)
	}
	return w.Flush()
}

func runAction(flags *ClientFlags, action, name string) error {
	c := newClient(flags)
	ctx := context.Background()
	var (
		resp client.ActionResponse
		err  error
	)
	switch action {
	case "start":
		resp, err = c.Start(ctx, name)
	case "stop":
		resp, err = c.Stop(ctx, name)
	case "restart":
		resp, err = c.Restart(ctx, name)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", resp.Name, resp.Message)
	return nil
}

func runGitPull(flags *ClientFlags, name string) error {
	c := newClient(flags)
	resp, err := c.GitPull(context.Background(), name)
	if err != nil {
		return err
	}
	fmt.Print(resp.Output)
	if resp.Error != "" {
		_, _ = fmt.Fprint(os.Stderr, resp.Error)
	}
	if resp.LatestCommit != nil {
		fmt.Printf("latest commit: %s %s (%s)\n",
			resp.LatestCommit.Hash[:min(12, len(resp.LatestCommit.Hash))],
			resp.LatestCommit.Message, resp.LatestCommit.Author)
	}
	if resp.Status != "success" {
		return fmt.Errorf("git pull failed for %q", name)
	}
	return nil
}

func runReload(flags *ClientFlags) error {
	c := newClient(flags)
	if err := c.ReloadConfig(context.Background()); err != nil {
		return err
	}
	fmt.Println("configuration reloaded")
	return nil
}
