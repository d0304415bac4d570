package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"radiohop/internal/app"
	"radiohop/internal/app/config"
	"radiohop/internal/failure"
	"radiohop/internal/version"
)

func main() {

	// Logger
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logrus.SetLevel(logrus.WarnLevel)
	if os.Getenv("RADIOHOP_LOG") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true, TimestampFormat: time.RFC3339Nano})
		logrus.Printf("Debug mode activated")
	}

	mainCommand := filepath.Base(os.Args[0])

	rating := flag.IntP("rating", "r", 0, "Minimum star rating of the station to switch to")
	configDir := flag.StringP("config", "c", config.DefaultDir(), "Location of radiohop config folder")
	showVersion := flag.Bool("version", false, "Show the version number")

	flag.Usage = func() {
		fmt.Printf("\nUsage: %s [OPTIONS] next|prev|random\n", mainCommand)
		fmt.Printf("\nSwitch the player to another internet radio station\n")
		fmt.Printf("\nOptions:\n")
		flag.PrintDefaults()
		fmt.Printf("\nCommands:\n")
		fmt.Printf("  next     Switch to the station after the current one\n")
		fmt.Printf("  prev     Switch to the station before the current one\n")
		fmt.Printf("  random   Switch to a random station\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("Version %s\n", version.AppVersion.String())
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		fmt.Printf("\n%s accepts a single command\n", mainCommand)
		flag.Usage()
		os.Exit(1)
	}

	err := run(flag.Arg(0), *configDir, *rating, flag.CommandLine.Changed("rating"))
	if err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) {
			fmt.Printf("[ERROR] %s: %s\n", fe.Kind, fe.Message())
		} else {
			fmt.Printf("[ERROR] %s\n", err)
		}
		os.Exit(1)
	}
}

func run(token string, configDir string, rating int, ratingSet bool) error {
	cmd, err := app.ParseCommand(token)
	if err != nil {
		return err
	}

	param := config.Load(configDir)

	// The param file floor applies only when -r is not given.
	floor := rating
	if !ratingSet {
		floor = param.DefaultRating
	}

	return app.New(param).Run(cmd, floor)
}
