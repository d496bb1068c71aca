package tui

import (
	"strings"

	"reelfinder/movie"
	"reelfinder/search"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("ReelFinder") + "\n\n")

	if m.screen == screenDetail {
		b.WriteString(m.detailView())
		return b.String()
	}

	b.WriteString(styleInput.Render(m.input.View()) + "\n")
	b.WriteString(m.filterBar() + "\n\n")

	if m.state.Notice != "" {
		b.WriteString(styleNotice.Render("Search Required: "+m.state.Notice) + "\n\n")
	}

	switch m.state.Status {
	case search.StatusIdle:
		b.WriteString("Start your search\n")
		b.WriteString(styleDim.Render("Enter a movie or TV series title to discover something new.") + "\n")
	case search.StatusLoading:
		b.WriteString(m.spinner.View() + styleDim.Render(" Searching...") + "\n")
	case search.StatusFailed:
		b.WriteString(styleError.Render(m.state.Err) + "\n")
		b.WriteString(styleDim.Render("press r to retry") + "\n")
	case search.StatusEmpty:
		b.WriteString("No movies found\n")
		b.WriteString(styleDim.Render("Try adjusting your search terms or filters") + "\n")
	case search.StatusResults:
		b.WriteString("Search Results (" + m.formatCount(m.state.TotalResults) + " found)\n\n")
		for i, it := range m.state.Items {
			b.WriteString(m.resultLine(i, it) + "\n")
		}
		if line := m.pagerLine(); line != "" {
			b.WriteString("\n" + line + "\n")
		}
	}

	b.WriteString("\n" + styleDim.Render(m.help()))
	return b.String()
}

func (m Model) filterBar() string {
	parts := make([]string, 0, len(movie.Kinds))
	for _, k := range movie.Kinds {
		if k == m.state.Kind {
			parts = append(parts, styleCurrent.Render(" "+k.Label()+" "))
			continue
		}
		parts = append(parts, styleDim.Render(" "+k.Label()+" "))
	}
	return strings.Join(parts, " ")
}

func (m Model) resultLine(i int, it movie.Movie) string {
	prefix := "  "
	title := it.Title
	if m.listFocus && i == m.cursor {
		prefix = styleCursor.Render("> ")
		title = styleCursor.Render(title)
	}
	return prefix + title + " " + styleDim.Render("("+it.Year+")") + " " + styleBadge.Render(it.Kind.Label())
}

func (m Model) help() string {
	if m.listFocus {
		return "↑/↓ move • ←/→ page • enter details • tab filter • r retry • / search • q quit"
	}
	return "enter search • tab filter • ↓ results • ctrl+c quit"
}

func (m Model) detailView() string {
	var b strings.Builder
	switch {
	case m.detailLoading:
		b.WriteString(m.spinner.View() + styleDim.Render(" Loading details...") + "\n")
	case m.detailErr != "":
		b.WriteString(styleError.Render(m.detailErr) + "\n")
		b.WriteString(styleDim.Render("press r to retry") + "\n")
	default:
		d := m.detail
		b.WriteString(styleTitle.Render(d.Title) + " " + styleDim.Render("("+d.Year+")") + " " + styleBadge.Render(d.Kind.Label()) + "\n")
		if len(d.Genres) > 0 {
			b.WriteString(styleInfo.Render(strings.Join(d.Genres, " · ")) + "\n")
		}
		if d.Plot != "" {
			b.WriteString("\n" + d.Plot + "\n")
		}
		if facts := d.Facts(); len(facts) > 0 {
			b.WriteString("\n")
			for _, f := range facts {
				b.WriteString(styleLabel.Render(f.Label) + f.Value + "\n")
			}
		}
	}
	b.WriteString("\n" + styleDim.Render("esc back • r retry • q quit"))
	return b.String()
}
