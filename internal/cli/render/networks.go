package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of networks as a table
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = true
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"", "NETWORK", "TYPE", "CHAIN ID", "STATUS"})
	for _, network := range result.Networks {
		marker := " "
		if network.Name == result.Current {
			marker = color.New(color.FgGreen).Sprint("*")
		}

		t.AppendRow(table.Row{
			marker,
			network.Name,
			networkKind(network),
			chainIDCell(network.ChainID),
			networkStatus(network),
		})
	}

	t.Render()
	return nil
}

func networkKind(n usecase.NetworkStatus) string {
	if n.Type == "" {
		return "-"
	}
	return fmt.Sprintf("%s/%s", n.Type, n.ChainType)
}

func chainIDCell(chainID uint64) string {
	if chainID == 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", chainID)
}

func networkStatus(n usecase.NetworkStatus) string {
	switch {
	case n.Error != nil:
		return color.New(color.FgRed).Sprintf("error: %v", n.Error)
	case len(n.MissingEnv) > 0:
		return color.New(color.FgYellow).Sprintf("missing %s", strings.Join(n.MissingEnv, ", "))
	default:
		return color.New(color.FgGreen).Sprint("ready")
	}
}
