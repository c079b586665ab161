package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/rosmarin/worldmap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dumpCommand prints the decoded tree of each file.
type dumpCommand struct {
	files   *[]string
	asJSON  *bool
	verbose *bool
}

func (cmd *dumpCommand) run(_ *kingpin.ParseContext) error {
	logger := newLogger(*cmd.verbose)

	failed := 0
	for _, f := range *cmd.files {
		if err := cmd.printFile(logger, f); err != nil {
			level.Error(logger).Log("msg", "decode failed", "file", f, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *dumpCommand) printFile(logger log.Logger, name string) error {
	m, err := worldmap.ReadFile(name)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "decoded", "file", name)

	if *cmd.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	color.New(color.Bold).Printf("%s:\n", name)
	m.Dump(os.Stdout)
	return nil
}

func addDumpCommand(app *kingpin.Application, verbose *bool) {
	cmd := &dumpCommand{verbose: verbose}
	dump := app.Command("dump", "Print the decoded tree of each world map.").Action(cmd.run)
	cmd.files = dump.Arg("file", "The files to decode.").Required().ExistingFiles()
	cmd.asJSON = dump.Flag("json", "Emit JSON instead of the debug dump.").Bool()
}
