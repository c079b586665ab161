package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/rosmarin/worldmap"
)

// statsCommand prints a summary of each file instead of the full tree.
type statsCommand struct {
	files   *[]string
	verbose *bool
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	logger := newLogger(*cmd.verbose)

	failed := 0
	for _, f := range *cmd.files {
		if err := cmd.printStats(f); err != nil {
			level.Error(logger).Log("msg", "decode failed", "file", f, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *statsCommand) printStats(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	m, n, err := worldmap.Decode(data)
	if err != nil {
		return err
	}

	color.New(color.Bold).Printf("%s:\n", name)
	fmt.Printf("\tfile size: %v, map: %v, trailing: %v\n",
		humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(n)), humanize.Bytes(uint64(len(data)-n)))
	fmt.Printf("\tversion: %d, name: %s\n", m.Version, m.Name)
	fmt.Printf("\tgrid: %d x %d, chunk width %d, chunk pow %d\n",
		m.HorizontalWidth, m.VerticalWidth, m.ChunkWidth, m.ChunkPow)
	fmt.Printf("\ttile types: %d, tiles: %d\n", m.TilesTypesCount, m.TilesCount)
	// Decoded list lengths follow the tile count, so they routinely differ
	// from the declared event counts; print both.
	fmt.Printf("\tevents: %d declared, %d decoded, %d pages\n",
		m.EventsCount, len(m.EventData), countPages(m.EventData))
	fmt.Printf("\tevent templates: %d declared, %d decoded, %d pages\n",
		m.EventsPalCount, len(m.EventTemplateData), countPages(m.EventTemplateData))
	return nil
}

func countPages(events []worldmap.EventRecord) int {
	total := 0
	for i := range events {
		total += len(events[i].Pages)
	}
	return total
}

func addStatsCommand(app *kingpin.Application, verbose *bool) {
	cmd := &statsCommand{verbose: verbose}
	stats := app.Command("stats", "Print a summary of each world map.").Action(cmd.run)
	cmd.files = stats.Arg("file", "The files to summarize.").Required().ExistingFiles()
}
