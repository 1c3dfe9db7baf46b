package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/kmbeta/kmbeta/pkg/directory"
	"github.com/kmbeta/kmbeta/pkg/eta"
)

// Routes writes route variants as an aligned table, one row per variant
func Routes(writer io.Writer, variants []directory.RouteVariant) {
	table := newTable(writer)
	table.SetHeader([]string{"route", "service_type", "direction", "orig", "dest"})

	for _, variant := range variants {
		table.Append([]string{
			variant.Route,
			strconv.Itoa(variant.ServiceType),
			string(variant.Direction),
			variant.Origin,
			variant.Destination,
		})
	}

	table.Render()
}

// ETARows writes resolved ETA rows with the countdown columns
// right-aligned so the fixed-width countdowns line up
func ETARows(writer io.Writer, rows []eta.Row) {
	table := newTable(writer)
	table.SetHeader([]string{"seq", "stop_name", "t1", "t2", "t3"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{row.Seq, row.StopName, row.ETA1, row.ETA2, row.ETA3})
	}

	table.Render()
}

func newTable(writer io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}
