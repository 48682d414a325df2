// Package flow derives Sankey diagram flows from categorized transactions
package flow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Edge is one flow from Source to Destination. Amount is never negative.
type Edge struct {
	Source      string
	Amount      decimal.Decimal
	Destination string
}

// String formats the edge for SankeyMATIC: "source [amount] destination"
func (e Edge) String() string {
	return fmt.Sprintf("%s [%s] %s", e.Source, e.Amount.String(), e.Destination)
}

// Edges is an ordered list of flows. Order determines the diagram's layout.
type Edges []Edge

func (e Edges) String() string {
	var buf strings.Builder
	for _, edge := range e {
		buf.WriteString(edge.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}

// WriteTo writes one edge per line to w
func (e Edges) WriteTo(w io.Writer) (int64, error) {
	buf := bufio.NewWriter(w)
	n, err := buf.WriteString(e.String())
	if err != nil {
		return int64(n), err
	}
	return int64(n), buf.Flush()
}
