// Package report renders simulation results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/simulator"
	"github.com/BenjaminHaaseT/card-counting-blackjack-simulation/internal/statistics"
)

const ruleWidth = 72

func formatMoney(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// WriteRun writes a block describing one finished run.
func WriteRun(w io.Writer, res statistics.Result) {
	fmt.Fprintf(w, "%s  seed=%d\n", HeaderStyle.Render(res.Strategy), res.Seed)
	fmt.Fprintf(w, "  %s %d rounds, %d hands (%s)\n",
		LabelStyle.Render("played:"), res.Rounds, res.Hands, res.Terminal)
	fmt.Fprintf(w, "  %s %d won / %d pushed / %d lost / %d surrendered, %d blackjacks\n",
		LabelStyle.Render("hands:"),
		res.Wins, res.Pushes, res.Losses, res.Surrenders, res.Blackjacks)
	fmt.Fprintf(w, "  %s %s -> %s (net %s, wagered %s)\n",
		LabelStyle.Render("balance:"),
		formatMoney(res.StartingBalance), formatMoney(res.EndingBalance),
		money(res.Net()), formatMoney(res.Wagered))
}

// WriteSummary writes the per-strategy aggregate table, best mean net
// first, followed by any note about failed runs.
func WriteSummary(w io.Writer, batch *simulator.Batch) {
	fmt.Fprintln(w, TitleStyle.Render("Simulation Summary"))
	fmt.Fprintf(w, "%s %d runs requested, %d completed, base seed %d\n\n",
		LabelStyle.Render("batch:"), batch.Requested, len(batch.Results), batch.Seed)

	for _, name := range batch.Summary.Names() {
		agg := batch.Summary.Strategies[name]
		writeAggregate(w, agg)
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	}

	if batch.Failed > 0 {
		fmt.Fprintln(w, WarningStyle.Render(
			fmt.Sprintf("%d run(s) failed and were excluded from the summary", batch.Failed)))
	}
}

func writeAggregate(w io.Writer, agg *statistics.Aggregate) {
	low, high := agg.ConfidenceInterval95()

	fmt.Fprintln(w, HeaderStyle.Render(agg.Name))
	fmt.Fprintf(w, "  %s %d runs, %d hands\n",
		LabelStyle.Render("volume:"), agg.Runs, agg.Hands)
	fmt.Fprintf(w, "  %s mean %s, median %s, std dev %s\n",
		LabelStyle.Render("net/run:"),
		money(agg.MeanNet()), money(agg.MedianNet()), formatMoney(agg.StdDev()))
	fmt.Fprintf(w, "  %s [%s, %s]\n",
		LabelStyle.Render("95% CI:"),
		formatMoney(low), formatMoney(high))
	fmt.Fprintf(w, "  %s %.1f%% win / %.1f%% push / %.1f%% loss, %s per hand\n",
		LabelStyle.Render("hands:"),
		agg.WinRate()*100, agg.PushRate()*100, agg.LossRate()*100,
		money(agg.NetPerHand()))
	fmt.Fprintf(w, "  %s %+.3f%% of wagered, %.1f hands survived per run\n",
		LabelStyle.Render("edge:"),
		agg.NetPerWagered()*100, agg.MeanHands())
	fmt.Fprintf(w, "  %s %d blackjacks, %d bankruptcies",
		LabelStyle.Render("events:"), agg.Blackjacks, agg.Bankruptcies)
	if agg.TableBreaks > 0 {
		fmt.Fprintf(w, ", %d broke the house", agg.TableBreaks)
	}
	fmt.Fprintln(w)
}
