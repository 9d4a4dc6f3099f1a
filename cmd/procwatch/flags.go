package main

import "time"

// ServeFlags holds flags for the serve command.
type ServeFlags struct {
	ConfigPath string
	Listen     string // overrides the config file when set
}

// ClientFlags holds connection flags shared by the remote commands.
type ClientFlags struct {
	APIUrl     string
	APITimeout time.Duration
	Insecure   bool
}
