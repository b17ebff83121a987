package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	if err := config.Load(envFiles(args)...); err != nil {
		return err
	}
	c := config.New()
	setupLogging(c.GetLogLevel())

	root := newRootCmd(c)
	root.SetArgs(args)
	if !quiet(args) {
		displayAppname(c.GetAppName())
	}
	return root.Execute()
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// envFiles pulls --env-file values out of args before cobra runs, since the
// environment has to be loaded before flag defaults are read from it.
func envFiles(args []string) []string {
	var files []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--env-file" && i+1 < len(args) {
			files = append(files, args[i+1])
			i++
		} else if file, ok := strings.CutPrefix(args[i], "--env-file="); ok && file != "" {
			files = append(files, file)
		}
	}
	return files
}

func quiet(args []string) bool {
	for _, a := range args {
		if a == "--quiet" || a == "-q" {
			return true
		}
	}
	return false
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(os.Stderr, myFigure.String())
}
