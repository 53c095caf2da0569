package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	diplomacy "github.com/TedDriggs/diplomacy-sub000"
	"github.com/TedDriggs/diplomacy-sub000/internal/orderparser"
	"github.com/TedDriggs/diplomacy-sub000/internal/rulebook"
	"github.com/TedDriggs/diplomacy-sub000/pkg/config"
	"github.com/TedDriggs/diplomacy-sub000/pkg/logger"
)

// usage :
// Displays the usage of the command. A scenario file is required; a
// configuration file is optional.
func usage() {
	fmt.Println("Usage:")
	fmt.Println("./adjudicate -scenario=[file] -config=[file] to adjudicate a turn of textual orders")
}

// scenario :
// The on-disk shape of one turn handed to this command: a list of
// orders in the canonical textual grammar, and nothing else — the
// starting positions are inferred from the orders themselves.
type scenario struct {
	Orders []string `json:"orders"`
}

// main :
// Reads a scenario file of textual orders, adjudicates it against the
// standard board under the configured rulebook edition, and prints the
// settled outcome of every order.
func main() {
	help := flag.Bool("h", false, "Print usage")
	scenarioFile := flag.String("scenario", "", "Path to a JSON scenario file listing textual orders")
	conf := flag.String("config", "", "Configuration file to customize app behavior (development/production)")

	flag.Parse()

	if *help {
		usage()
	}

	trueConf := ""
	if conf != nil {
		trueConf = *conf
	}
	metadata := config.Parse(trueConf)

	log := logger.NewStdLogger("adjudicate", metadata.RunID, metadata.MinLevel)

	defer func() {
		err := recover()
		if err != nil {
			stack := string(debug.Stack())
			log.Trace(logger.Fatal, "main", fmt.Sprintf("command crashed after error: %v (stack: %s)", err, stack))
		}

		log.Release()
	}()

	if *scenarioFile == "" {
		usage()
		panic(fmt.Errorf("a -scenario file is required"))
	}

	edition, ok := rulebook.ParseEdition(metadata.Edition)
	if !ok {
		panic(fmt.Errorf("unrecognized rulebook edition %q", metadata.Edition))
	}

	outcome, err := adjudicateScenario(*scenarioFile, edition, log)
	if err != nil {
		panic(err)
	}

	for _, o := range outcome.Orders() {
		result, _ := outcome.Get(o)
		fmt.Printf("%s => %v (succeeds=%t)\n", o, result, result.Succeeds())
	}
}

// adjudicateScenario reads and parses the scenario file, infers
// starting positions from the orders it contains, and adjudicates the
// turn against the standard board.
func adjudicateScenario(path string, edition rulebook.Edition, log logger.Logger) (*rulebook.Outcome, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scenario %q (err: %v)", path, err)
	}

	var s scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("could not parse scenario %q (err: %v)", path, err)
	}

	parsed := make([]diplomacy.Order, 0, len(s.Orders))
	for _, line := range s.Orders {
		o, err := orderparser.ParseMainOrder(line)
		if err != nil {
			return nil, fmt.Errorf("could not parse order %q (err: %v)", line, err)
		}
		parsed = append(parsed, o)
	}

	m := diplomacy.StandardMap()
	sub, err := diplomacy.SubmissionWithInferredState(m, parsed)
	if err != nil {
		return nil, fmt.Errorf("could not build submission (err: %v)", err)
	}

	return sub.Adjudicate(edition, log), nil
}
