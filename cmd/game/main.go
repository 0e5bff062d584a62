package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/courtsim/internal/config"
	"github.com/mitchelldurbincs/courtsim/internal/game"
	"github.com/mitchelldurbincs/courtsim/internal/game/core"
	"github.com/mitchelldurbincs/courtsim/internal/game/events"
	"github.com/mitchelldurbincs/courtsim/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/courtsim/internal/game/scoreboard"
	"github.com/mitchelldurbincs/courtsim/internal/game/strategy"
	"github.com/mitchelldurbincs/courtsim/internal/game/team"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay merged from config.<env>.yaml (empty for none)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	strategyName := flag.String("strategy", "", "Strategy applied after the walkthrough (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	if err := applyOverrides(*logLevel, *strategyName); err != nil {
		log.Fatal().Err(err).Msg("Invalid command line override")
	}
	cfg := config.Get()

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug().
		Str("config_file", config.ConfigFilePath()).
		Str("env", *env).
		Int("team_size", cfg.Game.TeamSize).
		Msg("Configuration loaded")

	final, err := strategy.Parse(cfg.Coach.DefaultStrategy)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid strategy")
	}

	if err := run(os.Stdout, cfg, scoreboard.Default(), final); err != nil {
		log.Fatal().Err(err).Msg("Walkthrough failed")
	}
}

// applyOverrides writes non-empty flag values over the loaded configuration
func applyOverrides(logLevel, strategyName string) error {
	overrides := []struct{ key, value string }{
		{"logging.level", logLevel},
		{"coach.default_strategy", strategyName},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if err := config.Set(o.key, o.value); err != nil {
			return err
		}
	}
	return config.Validate(config.Get())
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so the walkthrough on stdout stays readable
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}

// run walks through every behaviour of the simulation and reports to out
func run(out io.Writer, cfg *config.Config, board *scoreboard.Scoreboard, final strategy.Strategy) error {
	teamSize := cfg.Game.TeamSize
	court := core.NewCourt(cfg.Court.HalfWidth, cfg.Court.HalfLength)

	origin, corner := core.NewPosition(0, 0), core.NewPosition(3, 4)
	fmt.Fprintf(out, "Distance from %s to %s: %.1f\n", origin, corner, origin.DistanceTo(corner))
	fmt.Fprintf(out, "%s on court: %t\n", corner, court.Contains(corner))

	// Players and their nearest teammates/opponents
	players := []*game.Player{
		game.NewPlayer(1, core.NewPosition(10, 20), true),
		game.NewPlayer(2, core.NewPosition(30, 40), false),
		game.NewPlayer(3, core.NewPosition(50, 60), false),
		game.NewPlayer(4, core.NewPosition(70, 80), false),
	}
	p1 := players[0]
	p1.FindTeammates(players, 0, teamSize)
	p1.FindOpponents(players, 1, teamSize)
	fmt.Fprintf(out, "Player %d teammates: %s\n", p1.ID, idList(p1.Teammates))
	fmt.Fprintf(out, "Player %d opponents: %s\n", p1.ID, idList(p1.Opponents))

	eventLog := subscribers.NewLoggerSubscriber("event-log", log.Logger, zerolog.DebugLevel)
	bus := events.NewEventBus()
	bus.Subscribe(eventLog)

	// Possession
	ball := game.NewBall(core.NewPosition(15, 25), p1)
	ball.SetPublisher(board.GameID(), bus)
	fmt.Fprintf(out, "\nThe ball starts with player %d\n", ball.Possessor.ID)
	if ball.ChangePossessor() {
		fmt.Fprintf(out, "After the pass the ball is with player %d\n", ball.Possessor.ID)
	} else {
		fmt.Fprintf(out, "No teammate to pass to, player %d keeps the ball\n", ball.Possessor.ID)
	}

	// Scoreboard and referees
	lead := subscribers.NewReferee("Lead", out)
	trail := subscribers.NewReferee("Trail", out)
	board.AddObserver(eventLog)
	board.AddObserver(lead)
	board.AddObserver(trail)

	fmt.Fprintf(out, "\n%s vs %s\n", cfg.Scoreboard.HomeName, cfg.Scoreboard.AwayName)
	board.UpdateScore(10, 5)

	board.RemoveObserver(lead)
	fmt.Fprintln(out, "\nAfter removing one referee:")
	board.UpdateScore(20, 15)

	// Coach
	fmt.Fprintln(out)
	coach := strategy.NewCoach(out, log.Logger)
	coach.SetPublisher(board.GameID(), bus)
	coach.SetStrategy(strategy.Offensive)
	coach.ApplyStrategy()
	coach.SetStrategy(strategy.Defensive)
	coach.ApplyStrategy()
	coach.SetStrategy(final)
	coach.ApplyStrategy()

	coach.ObservePlayer(players[0])
	coach.ObservePlayer(players[1])

	// Team composition
	tree := team.NewTree()
	l1 := tree.AddLeaf(players[0])
	l2 := tree.AddLeaf(players[1])
	l3 := tree.AddLeaf(players[2])

	full := tree.AddGroup(cfg.Scoreboard.HomeName)
	for _, l := range []team.NodeID{l1, l2, l3} {
		if err := tree.Add(full, l); err != nil {
			return fmt.Errorf("building team: %w", err)
		}
	}
	sub := tree.AddGroup("Starters")
	for _, l := range []team.NodeID{l1, l2} {
		if err := tree.Add(sub, l); err != nil {
			return fmt.Errorf("building sub-team: %w", err)
		}
	}

	fmt.Fprintln(out, "\nTeam:")
	if err := tree.Display(out, full); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nSub-team:")
	return tree.Display(out, sub)
}

func idList(players []*game.Player) string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = fmt.Sprint(p.ID)
	}
	return "[" + strings.Join(ids, " ") + "]"
}
