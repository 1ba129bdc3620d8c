package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pairup/internal/pairing"
)

// WriteDOT exports g in Graphviz syntax. Nodes are labelled "name:
// requests". The undirected form draws one edge per compatible pair,
// labelled with the first shared slot; the directed form draws every
// candidate link as listed.
func WriteDOT(w io.Writer, g *pairing.Graph, directed bool) error {
	bw := bufio.NewWriter(w)
	kind, arrow := "graph", "--"
	if directed {
		kind, arrow = "digraph", "->"
	}

	fmt.Fprintf(bw, "%s G {\n  size=\"6,4\";\n  ratio=fill;\n", kind)
	fmt.Fprintln(bw, "  // Node attributes")
	for _, rel := range g.Relations {
		m := g.Member(rel)
		fmt.Fprintf(bw, "  %s [label=%s];\n", nodeID(rel.Self), dotQuote(fmt.Sprintf("%s: %d", m.Name, m.Requests)))
	}

	fmt.Fprintln(bw, "  // Edges")
	printed := make(map[[2]pairing.MemberID]struct{})
	for _, rel := range g.Relations {
		for _, c := range rel.Candidates {
			if !directed {
				key := [2]pairing.MemberID{min(rel.Self, c.Member), max(rel.Self, c.Member)}
				if _, ok := printed[key]; ok {
					continue
				}
				printed[key] = struct{}{}
			}
			fmt.Fprintf(bw, "  %s %s %s [label=%s];\n",
				nodeID(rel.Self), arrow, nodeID(c.Member), dotQuote(g.Roster.SlotLabel(c.Slot)))
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func nodeID(id pairing.MemberID) string {
	return fmt.Sprintf("m%d", id)
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
