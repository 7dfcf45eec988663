// Command codify categorizes open-ended survey responses with fuzzy
// matching, from the command line or an interactive terminal UI.
package main

import (
	"fmt"
	"os"

	configfile "github.com/codify-labs/codify-cli/internal/adapters/driven/config/file"
	"github.com/codify-labs/codify-cli/internal/adapters/driven/dataset/delimited"
	"github.com/codify-labs/codify-cli/internal/adapters/driven/dataset/xlsx"
	"github.com/codify-labs/codify-cli/internal/adapters/driven/scorer/fuzzwuzz"
	storagefile "github.com/codify-labs/codify-cli/internal/adapters/driven/storage/file"
	"github.com/codify-labs/codify-cli/internal/adapters/driven/storage/sqlite"
	"github.com/codify-labs/codify-cli/internal/adapters/driving/cli"
	"github.com/codify-labs/codify-cli/internal/core/ports/driven"
	"github.com/codify-labs/codify-cli/internal/core/services"
	"github.com/codify-labs/codify-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	// Recent-project history is a convenience; a broken database should
	// not keep the tool from running.
	var sessionStore driven.SessionStore
	if s, err := sqlite.NewSessionStore(configStore.GetString("data.dir")); err == nil {
		sessionStore = s
		defer s.Close()
	} else {
		logger.Warn("Session history unavailable: %v", err)
	}

	readers := []driven.DatasetReader{
		delimited.NewReader(),
		xlsx.NewReader(),
	}
	exporter := delimited.NewExporter(configStore.GetBool("export.include_text"))
	projectStore := storagefile.NewProjectStore()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Match:      services.NewMatchService(fuzzwuzz.NewScorer()),
		Codeframe:  services.NewCodeframeService(),
		Assignment: services.NewAssignmentService(),
		Project:    services.NewProjectService(readers, projectStore, exporter, sessionStore),
		Session:    sessionStore,
		Config:     configStore,
	})

	return cli.Execute()
}
