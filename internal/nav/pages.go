package nav

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"chemvista/internal/catalog"
	"chemvista/internal/domain"
	"chemvista/internal/searchapi"
)

// Page is a rendered navigation target
type Page struct {
	Status int
	Title  string
	Body   string
}

// String joins title and body for display
func (p Page) String() string {
	return pageTitleStyle.Render(p.Title) + "\n\n" + p.Body + "\n"
}

var (
	pageTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// Pages renders the compound, search and element pages
type Pages struct {
	searcher searchapi.Searcher
	catalogs *catalog.Store
	timeout  time.Duration
	logger   *zap.Logger
}

// NewPages creates a renderer backed by searcher and the element catalog
func NewPages(searcher searchapi.Searcher, catalogs *catalog.Store, timeout time.Duration, logger *zap.Logger) *Pages {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Pages{searcher: searcher, catalogs: catalogs, timeout: timeout, logger: logger}
}

// Render builds the page for path. Unknown paths and missing records give
// a 404 page; search failures give a 500 page.
func (p *Pages) Render(ctx context.Context, path string) Page {
	route, err := Parse(path)
	if err != nil {
		p.logger.Debug("no page for path", zap.String("path", path), zap.Error(err))
		return errorPage(http.StatusNotFound)
	}

	switch route.Kind {
	case RouteCompound:
		return p.compound(ctx, route.CompoundID)
	case RouteSearch:
		return p.search(ctx, route.Query)
	case RouteElement:
		return p.element(route.AtomicNumber)
	}
	return errorPage(http.StatusNotFound)
}

func (p *Pages) compound(ctx context.Context, id string) Page {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	results, err := p.searcher.Search(ctx, id)
	if err != nil {
		p.logger.Warn("compound lookup failed", zap.String("id", id), zap.Error(err))
		return errorPage(http.StatusInternalServerError)
	}
	for _, s := range results {
		if s.ID == id || s.Formula == id {
			return compoundPage(s)
		}
	}
	return Page{
		Status: http.StatusNotFound,
		Title:  "Compound not found",
		Body:   fmt.Sprintf("No compound with id %q.", id),
	}
}

func compoundPage(s domain.Suggestion) Page {
	var b strings.Builder
	writeField(&b, "Formula", s.Formula)
	if s.MolecularWeight > 0 {
		writeField(&b, "Molecular weight", fmt.Sprintf("%.3f g/mol", s.MolecularWeight))
	}
	writeField(&b, "ID", s.ID)
	return Page{Status: http.StatusOK, Title: s.Name, Body: strings.TrimRight(b.String(), "\n")}
}

func (p *Pages) search(ctx context.Context, query string) Page {
	query = strings.TrimSpace(query)
	title := "Search"
	if query == "" {
		return Page{
			Status: http.StatusOK,
			Title:  title,
			Body:   mutedStyle.Render("Enter a search term to find compounds and elements."),
		}
	}
	title = fmt.Sprintf("Search results for %q", query)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	compounds, err := p.searcher.Search(ctx, query)
	if err != nil {
		p.logger.Warn("page search failed", zap.String("query", query), zap.Error(err))
		return errorPage(http.StatusInternalServerError)
	}

	var elements []domain.Element
	if p.catalogs != nil {
		elements = p.catalogs.Current().Search(query)
	}

	var b strings.Builder
	if len(compounds) == 0 && len(elements) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No results found for %q", query)))
		b.WriteString("\n")
	}

	if len(compounds) > 0 {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Found %d compound(s) for %q:", len(compounds), query)))
		b.WriteString("\n")
		for _, c := range compounds {
			line := fmt.Sprintf("  • %s  %s", c.Name, labelStyle.Render(c.Formula))
			if c.MolecularWeight > 0 {
				line += mutedStyle.Render(fmt.Sprintf("  %.3f g/mol", c.MolecularWeight))
			}
			b.WriteString(line + "\n")
		}
	}

	if len(elements) > 0 {
		if len(compounds) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Elements matching %q:", query)))
		b.WriteString("\n")
		for _, e := range elements {
			b.WriteString(fmt.Sprintf("  • %s %s (%d)\n", labelStyle.Render(e.Symbol), e.Name, e.AtomicNumber))
		}
	}
	return Page{Status: http.StatusOK, Title: title, Body: strings.TrimRight(b.String(), "\n")}
}

func (p *Pages) element(n int) Page {
	if p.catalogs == nil {
		return errorPage(http.StatusNotFound)
	}
	e, err := p.catalogs.Current().ByNumber(n)
	if errors.Is(err, catalog.ErrNotFound) {
		return errorPage(http.StatusNotFound)
	}
	return ElementPage(e)
}

// ElementPage renders every known fact about e
func ElementPage(e domain.Element) Page {
	var b strings.Builder
	writeField(&b, "Atomic number", fmt.Sprintf("%d", e.AtomicNumber))
	writeField(&b, "Atomic mass", fmt.Sprintf("%g", e.AtomicMass))
	writeField(&b, "Category", domain.FormatCategory(e.Category))
	writeField(&b, "Period", fmt.Sprintf("%d", e.Period))
	if e.Group > 0 {
		writeField(&b, "Group", fmt.Sprintf("%d", e.Group))
	} else {
		writeField(&b, "Group", "f-block")
	}
	if e.ElectronConfig != "" {
		writeField(&b, "Electron configuration", e.ElectronConfig)
	}
	if e.MeltingPoint != nil {
		writeField(&b, "Melting point", fmt.Sprintf("%g °C", *e.MeltingPoint))
	}
	if e.BoilingPoint != nil {
		writeField(&b, "Boiling point", fmt.Sprintf("%g °C", *e.BoilingPoint))
	}
	if e.Density != nil {
		writeField(&b, "Density", fmt.Sprintf("%g g/cm³", *e.Density))
	}
	if e.Discovered != "" {
		writeField(&b, "Discovered", e.Discovered)
	}

	b.WriteString("\n")
	if e.Description != "" {
		b.WriteString(e.Description)
	} else {
		b.WriteString(mutedStyle.Render("No description available."))
	}

	return Page{
		Status: http.StatusOK,
		Title:  fmt.Sprintf("%s (%s)", e.Name, e.Symbol),
		Body:   b.String(),
	}
}

func errorPage(status int) Page {
	body := "The page you are looking for does not exist."
	if status >= 500 {
		body = "Something went wrong. Please try again later."
	}
	return Page{
		Status: status,
		Title:  fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Body:   body,
	}
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
