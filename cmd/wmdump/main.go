// Command wmdump inspects binary world map files: it decodes each file and
// prints either the full tree, JSON, or summary stats.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New("wmdump", "Inspect binary world map files.")
	verbose := app.Flag("verbose", "Also log debug details.").Short('v').Bool()

	addDumpCommand(app, verbose)
	addStatsCommand(app, verbose)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newLogger(verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	filter := level.AllowInfo()
	if verbose {
		filter = level.AllowDebug()
	}
	return level.NewFilter(logger, filter)
}
