// This program performs administrative tasks against the auction journal.
package main

import (
	"fmt"
	"os"

	"github.com/ardanlabs/auction/app/tooling/admin/commands"
	"github.com/ardanlabs/auction/foundation/auction/database"
	"github.com/ardanlabs/auction/foundation/auction/database/storage/disk"
	"github.com/ardanlabs/auction/foundation/auction/engine"
	"github.com/ardanlabs/auction/foundation/auction/genesis"
	"github.com/ardanlabs/auction/foundation/auction/registry/memory"
	"github.com/ardanlabs/auction/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	const dbPath = "zauction/journal/"

	strg, err := disk.New(dbPath)
	if err != nil {
		return err
	}
	defer strg.Close()

	return processCommands(os.Args, strg)
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args []string, strg *disk.Disk) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: admin [records|auctions]")
	}

	switch args[1] {
	case "records":
		if err := commands.Records(args, strg); err != nil {
			return fmt.Errorf("listing records: %w", err)
		}

	case "auctions":
		eng, err := rebuildEngine(strg)
		if err != nil {
			return fmt.Errorf("rebuilding state: %w", err)
		}
		defer eng.Shutdown()

		if err := commands.Auctions(args, eng); err != nil {
			return fmt.Errorf("listing auctions: %w", err)
		}
	}

	return nil
}

// rebuildEngine replays the journal into a fresh engine so state can be
// inspected offline. The registry is an empty stand-in since replay never
// consults it.
func rebuildEngine(strg *disk.Disk) (*engine.Engine, error) {
	gen, err := genesis.Load()
	if err != nil {
		return nil, err
	}

	engineID, err := database.ToAccountID(gen.Engine)
	if err != nil {
		return nil, err
	}

	return engine.New(engine.Config{
		EngineID: engineID,
		Genesis:  gen,
		Storage:  strg,
		Registry: memory.New(),
	})
}
