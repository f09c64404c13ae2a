// daexport converts COLLADA (.dae) rigs into flat ASCII files for engines
// that cannot read COLLADA.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/daexport/internal/config"
	"github.com/Faultbox/daexport/internal/convert"
	"github.com/Faultbox/daexport/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export", "x":
		cmdExport(args)
	case "info":
		cmdInfo(args)
	case "check":
		cmdCheck(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`daexport - COLLADA to ASCII rig exporter

Usage:
  daexport <command> [options]

Commands:
  export [-o dir] <file.dae>   Export mesh, skeleton, skinning and animation
  info <file.dae>              Show what the document contains
  check <dir>                  Verify an export directory
  help                         Show this help

Options (all commands):
  -config <file>    YAML config (default ./daexport.yaml)
  -env <file>       .env file (default ./.env)
  -o, -output <dir> Output directory (default out)
  -debug            Debug logging
  -log-file <file>  Also log to a rotating file

Examples:
  daexport export character.dae
  daexport export -o assets/hero hero.dae.lz4
  daexport info character.dae
  daexport check out`)
}

// setup parses args for a subcommand and initializes logging. It returns
// the loaded config and the positional argument.
func setup(name, usage string, args []string, extra func(fs *flag.FlagSet)) (*config.Config, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.BindFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: "+usage)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(err)
	}
	return cfg, fs.Arg(0)
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdExport(args []string) {
	var saveConfig string
	cfg, input := setup("export", "daexport export [-o dir] <file.dae>", args, func(fs *flag.FlagSet) {
		fs.StringVar(&saveConfig, "save-config", "", "Write the effective config to this file")
	})
	defer logger.Sync()

	if saveConfig != "" {
		if err := cfg.SaveTo(saveConfig); err != nil {
			fail(err)
		}
		logger.Info("saved config", zap.String("path", saveConfig))
	}

	if _, err := convert.Run(input, cfg); err != nil {
		fail(err)
	}
	fmt.Printf("Exported %s to %s\n", input, cfg.Export.OutputDir)
}

func cmdInfo(args []string) {
	_, input := setup("info", "daexport info <file.dae>", args, nil)
	defer logger.Sync()

	scene, err := convert.Inspect(input)
	if err != nil {
		fail(err)
	}
	fmt.Printf("File: %s\n", input)
	convert.Describe(os.Stdout, scene)
}

func cmdCheck(args []string) {
	_, dir := setup("check", "daexport check <dir>", args, nil)
	defer logger.Sync()

	report, err := convert.Check(dir)
	if err != nil {
		fail(err)
	}
	fmt.Printf("OK: %d joints, %d skinned meshes, %d animated joints\n",
		report.Joints, report.Skins, report.Animations)
}
