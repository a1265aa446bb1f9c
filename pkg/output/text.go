package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/factory/pkg/output/styles"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/pterm/pterm"
)

// textRenderer writes human readable output. When styled, headings and
// fields are colored with the embedded styles and entries are laid out
// with pterm tables.
type textRenderer struct {
	w      io.Writer
	styled bool
}

func (r *textRenderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

func (r *textRenderer) RenderReport(report Report) error {
	var b strings.Builder

	if len(report.Registries) == 0 {
		b.WriteString("No registries.\n")
		return r.flush(b.String())
	}

	for i, reg := range report.Registries {
		if i > 0 {
			b.WriteString("\n")
		}

		state := reg.Policy
		if reg.Sealed {
			state += ", sealed"
		}
		fmt.Fprintf(&b, "%s %s\n",
			r.style("Interface", reg.Interface),
			r.style("Policy", fmt.Sprintf("(%d, %s)", reg.Count, state)))

		if err := r.writeEntries(&b, reg.Entries); err != nil {
			return err
		}
		for _, d := range reg.Duplicates {
			b.WriteString("  " + r.duplicateLine(d))
		}
	}

	return r.flush(b.String())
}

func (r *textRenderer) writeEntries(b *strings.Builder, entries []registry.EntryInfo) error {
	if len(entries) == 0 {
		b.WriteString("  (empty)\n")
		return nil
	}

	if r.styled {
		data := pterm.TableData{{"ID", "PRODUCER"}}
		for _, e := range entries {
			data = append(data, []string{r.style("Id", e.ID), r.style("Producer", e.Producer)})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithLeftAlignment().WithData(data).Srender()
		if err != nil {
			return writeErr(err)
		}
		b.WriteString(table)
		b.WriteString("\n")
		return nil
	}

	tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "  %s\t%s\n", e.ID, e.Producer)
	}
	return tw.Flush()
}

func (r *textRenderer) duplicateLine(d registry.Duplicate) string {
	return fmt.Sprintf("%s duplicate %q: %s (previous %s, current %s)\n",
		r.style("Warning", "!"), d.ID, d.Reason(), d.Previous, d.Current)
}

func (r *textRenderer) RenderProduct(product Product) error {
	return r.flush(fmt.Sprintf("%s %s\n",
		r.style("Interface", product.Interface+"/"+product.ID),
		product.Description))
}

func (r *textRenderer) RenderDuplicates(report DuplicateReport) error {
	if len(report.Duplicates) == 0 {
		return r.flush("No duplicate registrations.\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.style("Error",
		fmt.Sprintf("%d duplicate registration(s):", len(report.Duplicates))))
	for _, d := range report.Duplicates {
		fmt.Fprintf(&b, "  %s ", r.style("Interface", d.Interface))
		b.WriteString(r.duplicateLine(d))
	}
	return r.flush(b.String())
}

func (r *textRenderer) flush(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return writeErr(err)
	}
	return nil
}
