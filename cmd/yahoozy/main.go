package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/term"

	"github.com/velbaek/yahoozy/pkg/config"
	"github.com/velbaek/yahoozy/pkg/game"
	"github.com/velbaek/yahoozy/pkg/gui"
	"github.com/velbaek/yahoozy/pkg/highscore"
	"github.com/velbaek/yahoozy/pkg/random"
	"github.com/velbaek/yahoozy/pkg/util"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	playerFlag := flag.String("player", "", "player name recorded on the scorecard")
	dbFlag := flag.String("db", "", "path to the highscore database")
	flag.Parse()
	util.InitLog(*logPath, "YAHOOZY: ")

	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yahoozy: %v\n", err)
		os.Exit(1)
	}

	// The whole UI is a terminal; there is nothing to do without one
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "yahoozy: stdin is not a terminal")
		os.Exit(1)
	}

	player := playerName(*playerFlag, cfg.Player)

	theme, err := gui.ImportTheme(cfg.Theme)
	if err != nil {
		log.Printf("unknown theme %q, using basic", cfg.Theme)
		theme = gui.ThemeBasic
	}

	// A broken store degrades to an unsaved score, not a dead game
	store := openStore(*dbFlag, cfg.DataDir)
	if store != nil {
		defer store.Close()
	}

	// Display failures are fatal and happen before any game state exists
	screen, err := gui.InitScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yahoozy: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	seed, err := random.NewSeed()
	if err != nil {
		log.Printf("crypto seed unavailable: %v", err)
		seed = time.Now().UnixNano()
	}
	g := game.New(player, rand.New(rand.NewSource(seed)))

	gs, err := gui.NewGameState(screen, g, store, gui.DefaultKeymap(), theme)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "yahoozy: %v\n", err)
		os.Exit(1)
	}

	if err := gui.Run(gs); err != nil {
		log.Printf("game loop: %v", err)
	}
}

// playerName resolves the player name: flag, then environment, then
// the OS login name, then a generated one.
func playerName(flagName, envName string) string {
	if flagName != "" {
		return flagName
	}
	if envName != "" {
		return envName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return capitalize(u.Username)
	}
	return petname.Generate(2, "-")
}

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

// openStore opens the highscore database, preferring the flag path,
// then the configured data dir, then the platform default. A nil
// return means scores will not be persisted this run.
func openStore(flagPath, dataDir string) highscore.Store {
	path := flagPath
	if path == "" {
		dir := dataDir
		if dir == "" {
			var err error
			dir, err = highscore.DataPath()
			if err != nil {
				log.Printf("highscore dir unavailable: %v", err)
				return nil
			}
		}
		path = filepath.Join(dir, "highscores.db")
	}

	store, err := highscore.OpenSQLite(path)
	if err != nil {
		log.Printf("highscore store unavailable: %v", err)
		return nil
	}
	return store
}
