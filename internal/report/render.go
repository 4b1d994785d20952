package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/compose-network/filedemo/configs"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

const messageMaxWidth = 60

// Render writes the model to w in the requested format. ReportFormatNone
// writes nothing.
func Render(w io.Writer, m *Model, format configs.ReportFormat) error {
	var out string
	switch format {
	case configs.ReportFormatNone:
		return nil
	case configs.ReportFormatYAML:
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("could not marshal report. Err: '%w'", err)
		}
		out = string(data)
	case configs.ReportFormatTable, configs.ReportFormatMarkdown:
		out = renderTable(m, format) + "\n"
	default:
		return fmt.Errorf("unknown report format %q", format)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("could not write report. Err: '%w'", err)
	}
	return nil
}

func renderTable(m *Model, format configs.ReportFormat) string {
	tw := table.NewWriter()
	tw.SetTitle("run " + m.RunID)
	tw.AppendHeader(table.Row{"#", "Step", "Kind", "Message"})
	for i, s := range m.Steps {
		tw.AppendRow(table.Row{i + 1, s.Name, s.Kind.String(), oneLine(s.Message)})
	}
	tw.AppendFooter(table.Row{"", "", "failures", m.Failures()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: messageMaxWidth},
	})

	if format == configs.ReportFormatMarkdown {
		return tw.RenderMarkdown()
	}
	tw.SetStyle(table.StyleLight)
	return tw.Render()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
