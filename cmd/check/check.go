package check

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/sampleboard/cmd/board/hotkeys"
	"github.com/gigurra/sampleboard/cmd/board/roster"
	"github.com/gigurra/sampleboard/cmd/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Params struct {
	Config   string `pos:"true" help:"Path to the soundboard config file (INI format)"`
	MusicDir string `short:"m" optional:"true" help:"Directory containing the audio files" default:"music"`
	Keys     bool   `short:"k" optional:"true" help:"Also print the resolved hotkey bindings"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "check",
		Short:       "Validate a soundboard config and print the roster",
		Long:        "Validate a soundboard config without starting the UI. Exits non-zero on any config, asset or hotkey error.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "check: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) error {
	tracks, err := roster.Load(params.Config, params.MusicDir, hotkeys.ReservedTokens())
	if err != nil {
		return err
	}

	cats := roster.BuildCategories(tracks)
	reg, err := hotkeys.Build(tracks, cats)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Artist", "File", "Offset", "Key", "Category"})
	for i, track := range tracks {
		t.AppendRow(table.Row{i + 1, track.Title, track.Artist, track.Filepath, track.StartOffset, track.Hotkey, track.Category})
	}
	t.Render()

	if params.Keys {
		kt := table.NewWriter()
		kt.SetOutputMirror(stdout)
		kt.SetStyle(table.StyleLight)
		kt.AppendHeader(table.Row{"Key", "Action"})
		for _, b := range reg.Bindings() {
			kt.AppendRow(table.Row{b.Token, describeAction(b.Action)})
		}
		kt.Render()
	}

	names := cats.Names()
	fmt.Fprintf(stdout, "%d tracks in %d categories (%s), OK\n", len(tracks), cats.Len(), strings.Join(names, ", "))
	return nil
}

func describeAction(a hotkeys.Action) string {
	switch a := a.(type) {
	case hotkeys.PlaySpecific:
		return "play " + a.Track.Title
	case hotkeys.PlayRandom:
		return "play random from " + a.Category
	case hotkeys.Stop:
		return "stop playback"
	default:
		return "?"
	}
}
