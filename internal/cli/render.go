package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/model"
	"github.com/Veraticus/axox-storefront/internal/store"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount in whole dirhams, e.g. "AED 12,999".
func FormatPrice(amount int) string {
	return pricePrinter.Sprintf("%s %d", model.Currency, amount)
}

// RenderProducts writes a product table.
func RenderProducts(w io.Writer, products []model.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("No products match."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Name"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Type"),
		HeaderStyle.Render("Price"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 14),
		strings.Repeat("-", 28),
		strings.Repeat("-", 11),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10))

	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.Type, FormatPrice(p.Price))
	}
	return tw.Flush()
}

// RenderProduct renders a product detail box.
func RenderProduct(p model.Product) string {
	var b strings.Builder

	if p.Badge != "" {
		b.WriteString(BadgeStyle.Render(p.Badge) + "\n")
	}
	b.WriteString(PriceStyle.Render(FormatPrice(p.Price)))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  %s · %s", p.Category, p.Type)) + "\n\n")
	b.WriteString(p.Description + "\n")

	if len(p.Highlights) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Highlights") + "\n")
		for _, h := range p.Highlights {
			b.WriteString("  • " + h + "\n")
		}
	}
	if len(p.USPs) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Why AXOX") + "\n")
		for _, u := range p.USPs {
			b.WriteString("  " + SuccessIcon + " " + u + "\n")
		}
	}

	specs := specLines(p.Specs)
	if len(specs) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Specs") + "\n")
		for _, line := range specs {
			b.WriteString("  " + line + "\n")
		}
	}

	return RenderBox(p.Name, strings.TrimRight(b.String(), "\n"))
}

func specLines(s model.Specs) []string {
	var lines []string
	for _, field := range model.CompareFields {
		if v := s.Value(field); v != "" {
			lines = append(lines, fmt.Sprintf("%-9s %s", fieldLabel(field)+":", v))
		}
	}
	return lines
}

func fieldLabel(field model.SpecField) string {
	name := string(field)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// RenderSearch writes a search response. Recommendations are resolved against
// cat; ids the catalog does not know are shown verbatim.
func RenderSearch(w io.Writer, resp advisor.SearchResponse, source advisor.Source, cat *catalog.Catalog) error {
	var b strings.Builder

	b.WriteString(FormatTitle("Search results") + "\n")
	b.WriteString(renderIntent(resp.Intent) + "\n")

	if len(resp.ClarifyingQuestions) > 0 {
		b.WriteString("\n" + FormatInfo("A couple of questions would sharpen these picks:") + "\n")
		for _, q := range resp.ClarifyingQuestions {
			b.WriteString(fmt.Sprintf("  %s %s", QuestionIcon, q.Question))
			if len(q.Options) > 0 {
				b.WriteString(SubtleStyle.Render(" (" + strings.Join(q.Options, " / ") + ")"))
			}
			b.WriteString("\n")
		}
	}

	if len(resp.Recommendations) == 0 {
		b.WriteString("\n" + FormatWarning("No products matched. Try a broader query.") + "\n")
	} else {
		b.WriteString("\n" + BoldStyle.Render("Recommended") + "\n")
		for i, rec := range resp.Recommendations {
			b.WriteString(fmt.Sprintf("  %d. %s\n     %s\n", i+1, productLabel(cat, rec.ProductID), rec.Explanation))
		}
	}

	if len(resp.Alternatives) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Also consider") + "\n")
		for _, alt := range resp.Alternatives {
			b.WriteString(fmt.Sprintf("  • %s: %s\n", productLabel(cat, alt.ProductID), alt.Reason))
		}
	}

	if resp.WhyThese != nil {
		b.WriteString("\n" + SubtleStyle.Render(*resp.WhyThese) + "\n")
	}
	b.WriteString(SubtleStyle.Render(sourceNote(source)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderIntent(intent advisor.Intent) string {
	parts := []string{"Goal: " + valueOr(intent.Goal, "not sure yet")}
	if intent.Space != nil {
		parts = append(parts, "Space: "+*intent.Space)
	}
	if intent.Budget != nil {
		parts = append(parts, "Budget: "+*intent.Budget)
	}
	if len(intent.Priorities) > 0 {
		parts = append(parts, "Priorities: "+strings.Join(intent.Priorities, ", "))
	}
	return InfoStyle.Render(strings.Join(parts, " · "))
}

// RenderAdvice writes purchase advice for product.
func RenderAdvice(w io.Writer, product model.Product, resp advisor.AdviceResponse, source advisor.Source, cat *catalog.Catalog) error {
	var b strings.Builder

	b.WriteString(FormatTitle("Advice for "+product.Name) + "\n")

	if len(resp.FitNotes) > 0 {
		b.WriteString(BoldStyle.Render("Will it fit?") + "\n")
		for _, note := range resp.FitNotes {
			icon := SuccessStyle.Render(SuccessIcon)
			if !note.OK {
				icon = ErrorStyle.Render(ErrorIcon)
			}
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", icon, note.Label, note.Value))
		}
	}
	writeList(&b, "Best for", resp.BestFor)
	writeList(&b, "Not ideal for", resp.NotIdealFor)

	if len(resp.Alternatives) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Alternatives") + "\n")
		for _, alt := range resp.Alternatives {
			b.WriteString(fmt.Sprintf("  • %s: %s\n", productLabel(cat, alt.ProductID), alt.Reason))
		}
	}
	if len(resp.AddOns) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Add-ons") + "\n")
		for _, add := range resp.AddOns {
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", CartIcon, productLabel(cat, add.ProductID), add.Reason))
		}
	}
	b.WriteString("\n" + SubtleStyle.Render(sourceNote(source)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + BoldStyle.Render(title) + "\n")
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
}

// RenderCompare writes a side-by-side spec table for a compare view.
func RenderCompare(w io.Writer, view store.CompareView) error {
	switch view.State {
	case store.CompareEmpty:
		_, err := fmt.Fprintln(w, FormatInfo("Nothing to compare yet. Pick two products from the same category."))
		return err
	case store.CompareSingle:
		_, err := fmt.Fprintln(w, FormatInfo(fmt.Sprintf("Add one more %s product to compare with %s.",
			view.Products[0].Category, view.Products[0].Name)))
		return err
	case store.CompareMismatch:
		_, err := fmt.Fprintln(w, FormatWarning("These products are in different categories and cannot be compared."))
		return err
	}

	if _, err := fmt.Fprintln(w, FormatTitle(CompareIcon+" Compare")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	header := []string{HeaderStyle.Render("")}
	prices := []string{"Price"}
	for _, p := range view.Products {
		header = append(header, HeaderStyle.Render(p.Name))
		prices = append(prices, FormatPrice(p.Price))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(prices, "\t"))
	for _, row := range view.Rows {
		fmt.Fprintln(tw, fieldLabel(row.Field)+"\t"+strings.Join(row.Values, "\t"))
	}
	return tw.Flush()
}

// RenderTotals writes a cart summary.
func RenderTotals(w io.Writer, items []model.CartItem, totals model.CartTotals) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(tw, "%s\tx%d\t%s\n", item.Product.Name, item.Quantity, FormatPrice(item.LineTotal()))
	}
	fmt.Fprintf(tw, "%s\t\t%s\n", "Subtotal", FormatPrice(totals.Subtotal))
	shipping := FormatPrice(totals.Shipping)
	if totals.FreeShipping() {
		shipping = "Free"
	}
	fmt.Fprintf(tw, "%s\t\t%s\n", "Shipping", shipping)
	fmt.Fprintf(tw, "%s\t\t%s\n", BoldStyle.Render("Total"), PriceStyle.Render(FormatPrice(totals.Total)))
	return tw.Flush()
}

func productLabel(cat *catalog.Catalog, id string) string {
	if cat != nil {
		if p, ok := cat.ByID(id); ok {
			return fmt.Sprintf("%s (%s)", p.Name, FormatPrice(p.Price))
		}
	}
	return id
}

func sourceNote(source advisor.Source) string {
	switch source {
	case advisor.SourceBackend:
		return "Answered by the AXOX recommendation service."
	case advisor.SourceCache:
		return "Answered from recent recommendations."
	default:
		return "Answered by the offline advisor."
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
