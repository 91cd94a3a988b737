package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	name = strings.TrimSpace(name)

	short := "Print version"
	prefix := "version"

	if name != "" {
		short = "Print " + name + " version"
		prefix = name + " version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			hash, ts := getVersionHashAndTimestamp()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s from %s\n", prefix, hash, ts)
		},
	}
}

type buildInfo struct {
	commitHash string
	commitTime string
	// modified is true, if the binary was built from uncommitted changes.
	modified bool
}

// getVersionHashAndTimestamp returns the last git hash and commit timestamp.
// Binaries built from a dirty tree, or without vcs information, report @latest and the current time.
func getVersionHashAndTimestamp() (string, string) {
	info := readBuildInfo()

	if info.modified || info.commitHash == "" {
		return "@latest", time.Now().UTC().Format(time.RFC3339)
	}

	return info.commitHash, info.commitTime
}

// readBuildInfo needs the vcs information to be embedded by `go build`.
// Binaries of `go run` and `go test` do not contain it.
func readBuildInfo() buildInfo {
	info := buildInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.commitHash = setting.Value
		case "vcs.time":
			info.commitTime = setting.Value
		case "vcs.modified":
			info.modified = setting.Value == "true"
		}
	}

	return info
}
