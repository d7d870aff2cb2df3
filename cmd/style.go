package main

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/powchain/powchain/ledger"
)

// printBlock renders one sealed block as a boxed panel.
func printBlock(b ledger.Block) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|BLOCK #" + strconv.Itoa(b.Index) + "|")

	body := pterm.Sprintfln("Payload:   %s", b.Payload)
	body += pterm.Sprintfln("Timestamp: %s", time.Unix(b.Timestamp, 0).Format(time.RFC3339))
	body += pterm.Sprintfln("Nonce:     %d", b.Nonce)
	body += pterm.Sprintfln("PrevHash:  %s", shortHash(b.PrevHash))
	body += pterm.Sprintf("Hash:      %s", pterm.LightCyan(b.Hash))

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)}},
	}).Render()
}

// printChainSummary renders a one-row-per-block table of the whole chain.
func printChainSummary(chain *ledger.Blockchain) {
	rows := pterm.TableData{{"Index", "Nonce", "Hash", "Payload"}}
	for _, b := range chain.Blocks() {
		rows = append(rows, []string{
			strconv.Itoa(b.Index),
			strconv.FormatUint(b.Nonce, 10),
			shortHash(b.Hash),
			b.Payload,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// shortHash abbreviates long hashes for display; the genesis sentinel "0"
// passes through unchanged.
func shortHash(h string) string {
	if len(h) <= 16 {
		return h
	}
	return h[:12] + "..." + h[len(h)-4:]
}
