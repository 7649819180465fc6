package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/sampleboard/cmd/board"
	"github.com/gigurra/sampleboard/cmd/check"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "sampleboard",
		Short:   "Trigger preconfigured audio samples from a terminal grid",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			board.Cmd(),
			check.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
