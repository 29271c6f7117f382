package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
	"github.com/mrtajniak/AvidDNxRecommender/matcher"
)

var profileTableHeader = table.Row{"Profile", "Resolutions", "Frame rates", "Depth", "Chroma", "Class"}

// renderProfileTable renders profiles for terminal output, in the order
// given.
func renderProfileTable(profiles []catalog.Profile) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(profileTableHeader)

	for _, p := range profiles {
		tw.AppendRow(table.Row{
			p.ID(),
			strings.Join(p.Resolutions, "\n"),
			frameRateCell(p.FrameRates),
			string(p.ColorDepth),
			string(p.Chroma),
			string(p.Preference),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
	})

	return tw.Render()
}

// renderCatalogTable renders the whole catalog
func renderCatalogTable(cat catalog.Catalog) string {
	return renderProfileTable(cat)
}

// frameRateCell wraps a profile's frame rates into a compact cell
func frameRateCell(rates []string) string {
	out := make([]string, len(rates))
	for i, r := range rates {
		out[i] = strings.TrimSuffix(matcher.DisplayFrameRate(r), " fps")
	}
	return strings.Join(out, ", ")
}
