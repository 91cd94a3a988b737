// Package cmd contains the recordstore command line interface.
package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const appName = "recordstore"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   appName,
		Short: "recordstore serves shop items and school students over a JSON API",
		Long: `An in-memory record store with CRUD and filter endpoints for
shop items (/api/items) and school students (/api/students).`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
	}
}

// NewRecordStoreCLI initialises the complete cli with its commands and returns the root command.
// Without a sub command it serves the API.
func NewRecordStoreCLI(osSignal <-chan os.Signal) *cobra.Command {
	serve := newServeCmd(osSignal)

	rootCmd := newRootCmd()
	rootCmd.RunE = serve.RunE
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(Version(appName))

	return rootCmd
}

// NewInterruptSignalChannel returns a channel listening for os.Signals the server reacts to.
func NewInterruptSignalChannel() chan os.Signal {
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)

	return osSignal
}

// Execute runs the recordstore cli.
func Execute() {
	if err := NewRecordStoreCLI(NewInterruptSignalChannel()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
