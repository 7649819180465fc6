package board

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/sampleboard/cmd/board/hotkeys"
	"github.com/gigurra/sampleboard/cmd/board/playback"
	"github.com/gigurra/sampleboard/cmd/board/roster"
	"github.com/gigurra/sampleboard/cmd/common"
	"github.com/spf13/cobra"
)

type Params struct {
	Config   string `pos:"true" help:"Path to the soundboard config file (INI format)"`
	MusicDir string `short:"m" optional:"true" help:"Directory containing the audio files" default:"music"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "board",
		Short: "Run the interactive soundboard",
		Long: `Run the interactive soundboard.

Every configured sample gets a trigger in a grid, grouped into category
tabs. Triggers fire on mouse click or on their configured hotkey.

Fixed keys:
  ENTER          - Play a random sample
  1-9            - Play a random sample from category 1-9
  r              - Play a random sample from the visible category
  SPACE          - Stop playback
  TAB / arrows   - Switch category tab
  ESC or Ctrl+C  - Quit`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params); err != nil {
				fmt.Fprintf(os.Stderr, "board: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params) error {
	tracks, err := roster.Load(params.Config, params.MusicDir, hotkeys.ReservedTokens())
	if err != nil {
		return err
	}

	cats := roster.BuildCategories(tracks)
	reg, err := hotkeys.Build(tracks, cats)
	if err != nil {
		return err
	}

	for _, name := range cats.Names() {
		if n := len(cats.Tracks(name)); n > gridRows*gridCols {
			slog.Warn("category has more tracks than grid cells, overflow tracks only reachable via hotkeys and random",
				"category", name, "tracks", n, "cells", gridRows*gridCols)
		}
	}

	if !playback.AudioAvailable {
		slog.Warn("audio output not available in this build, triggers will be silent")
	}

	ctrl := playback.NewController(playback.NewTransport())
	defer func() { _ = ctrl.Stop() }()

	p := tea.NewProgram(newModel(cats, reg, ctrl), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
