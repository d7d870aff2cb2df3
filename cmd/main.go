package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/powchain/powchain/ledger"
)

// defaultPayloads is mined when no payloads are given on the command line.
var defaultPayloads = []string{
	"Transaction Data #1",
	"Transaction Data #2",
	"Transaction Data #3",
}

type options struct {
	Difficulty int  `short:"d" long:"difficulty" default:"4" description:"Leading zero hex characters required of every mined block hash"`
	Quiet      bool `short:"q" long:"quiet" description:"Skip the per-block panels, print only the summary"`
}

// parseOptions parses command line arguments; leftover positionals are the
// payloads to mine.
func parseOptions(args []string) (*options, []string, error) {
	opts := &options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] [PAYLOAD...]"
	payloads, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if len(payloads) == 0 {
		payloads = defaultPayloads
	}
	return opts, payloads, nil
}

func main() {
	opts, payloads, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("PoW", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle(" Chain", pterm.FgDarkGray.ToStyle()),
	).Render()

	chain, err := ledger.NewBlockchain(opts.Difficulty)
	if err != nil {
		logger.Error("failed to create blockchain", "error", err.Error())
		os.Exit(1)
	}
	pterm.Info.Printfln("Chain created with difficulty %d (genesis sealed)", chain.Difficulty())
	pterm.Println()

	for _, payload := range payloads {
		spinner, _ := pterm.DefaultSpinner.Start(pterm.Sprintf("Mining block with payload %q ...", payload))
		start := time.Now()

		block, err := chain.MineBlock(payload)
		if err != nil {
			spinner.Fail()
			logger.Error("mining failed", "payload", payload, "error", err.Error())
			os.Exit(1)
		}

		spinner.Success(pterm.Sprintf("Block #%d mined in %s (nonce %d)", block.Index, time.Since(start).Round(time.Millisecond), block.Nonce))
		if !opts.Quiet {
			printBlock(block)
		}
	}

	// Every node receiving these blocks would re-run the same check; here
	// the single process plays all of them.
	pterm.DefaultSection.Println("Verifying chain")
	if err := chain.Verify(); err != nil {
		logger.Error("chain verification failed", "error", err.Error())
		os.Exit(1)
	}
	printChainSummary(chain)
	pterm.Success.Printfln("All %d blocks verified: the chain is valid", chain.Len())
}
