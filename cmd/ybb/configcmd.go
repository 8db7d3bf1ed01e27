package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boazy/ybb/internal/config"
)

func printConfigUsage(w *os.File) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ybb config validate [--path PATH]")
	fmt.Fprintln(w, "  ybb config print [--path PATH]")
}

func runConfigCmd(args []string) int {
	if len(args) == 0 {
		printConfigUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/ybb/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var err error
		if *path == "" {
			_, err = config.Load()
		} else {
			_, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/ybb/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
