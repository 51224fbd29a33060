package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dscsnu/ping-game-theory-25-pkg/strategy"
	"github.com/dscsnu/ping-game-theory-25-pkg/tester"
)

func main() {
	name := flag.String("strategy", "rock", "candidate strategy to test, one of: "+strings.Join(strategy.Names(), ", "))
	configPath := flag.String("config", "", "path to a YAML tester config")
	rounds := flag.Int("rounds", 0, "rounds per match")
	matches := flag.Int("matches", 0, "matches per opponent")
	seed := flag.Int64("seed", -1, "seed for randomized opponents (-1 for time-based)")
	opponents := flag.String("opponents", "", "comma-separated opponent roster")
	records := flag.String("records", "", "directory for CSV match records")
	debug := flag.Bool("debug", false, "log every round")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	options := []tester.Option{}
	if *configPath != "" {
		config, err := tester.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		options = append(options, config.Options()...)
	}
	// The candidate is picked by flag, so its label is too.
	options = append(options, tester.WithName(*name))

	// Flags override the config file.
	if *rounds > 0 {
		options = append(options, tester.WithRounds(*rounds))
	}
	if *matches > 0 {
		options = append(options, tester.WithMatches(*matches))
	}
	if *seed >= 0 {
		options = append(options, tester.WithSeed(uint64(*seed)))
	}
	if *opponents != "" {
		options = append(options, tester.WithOpponents(strings.Split(*opponents, ",")...))
	}
	if *records != "" {
		options = append(options, tester.WithRecords(*records))
	}

	factory, err := strategy.Lookup(*name)
	if err != nil {
		log.Fatal().Err(err).Msgf("pick one of: %s", strings.Join(strategy.Names(), ", "))
	}

	t := tester.New(factory, options...)
	_, err = t.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("test run failed")
	}
}
