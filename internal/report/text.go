package report

import (
	"bufio"
	"fmt"
	"io"

	"pairup/internal/pairing"
)

// Message is the text around the pair list.
type Message struct {
	Greeting     string
	Alternatives string
}

// WriteText prints the announcement: greeting, one "@a -- @b (slot)" line
// per pair, then everyone left with open requests and the alternatives.
func WriteText(w io.Writer, result *pairing.Result, msg Message) error {
	bw := bufio.NewWriter(w)
	roster := result.Roster()

	fmt.Fprintln(bw, msg.Greeting)
	if len(result.Pairs) == 0 {
		fmt.Fprintln(bw, "No pairs available to display.")
	}
	for _, p := range result.Pairs {
		a, b := result.PairNames(p)
		fmt.Fprintf(bw, "@%s -- @%s (%s)\n", a, b, roster.SlotLabel(p.Slot))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "As for")
	for _, s := range result.Singles {
		fmt.Fprintf(bw, "@%s\n", roster.Name(s.Member))
	}
	fmt.Fprintln(bw, msg.Alternatives)
	return bw.Flush()
}
