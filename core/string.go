// SPDX-License-Identifier: MIT

package core

import (
	"strconv"
	"strings"
)

// String renders g for debugging: mode and counts, the sorted node list, then
// one line per live edge in id order (with its weight in weighted mode).
// The format is deterministic but not a stable interface.
//
//	Hypergraph{weighted nodes=3 edges=1}
//	  nodes: [1 2 3]
//	  e0: [1 2 3] w=2.5
func (g *Hypergraph) String() string {
	var b strings.Builder

	b.WriteString("Hypergraph{")
	if g.weighted {
		b.WriteString("weighted")
	} else {
		b.WriteString("unweighted")
	}
	b.WriteString(" nodes=")
	b.WriteString(strconv.Itoa(len(g.incidence)))
	b.WriteString(" edges=")
	b.WriteString(strconv.Itoa(g.liveEdges))
	b.WriteString("}\n  nodes: ")
	writeNodeList(&b, g.Nodes())
	b.WriteByte('\n')

	for i := range g.slots {
		s := &g.slots[i]
		if !s.live() {
			continue
		}
		b.WriteString("  e")
		b.WriteString(strconv.FormatUint(uint64(i), 10))
		b.WriteString(": ")
		writeNodeList(&b, s.members)
		if g.weighted {
			b.WriteString(" w=")
			b.WriteString(strconv.FormatFloat(s.weight, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writeNodeList(b *strings.Builder, ids []NodeID) {
	b.WriteByte('[')
	for i, n := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(n), 10))
	}
	b.WriteByte(']')
}
