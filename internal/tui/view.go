package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vaultscope/asset-onboarding/internal/domain"
)

const columnWidth = 18

var (
	columnStyle = lipgloss.NewStyle().
			Width(columnWidth).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("62"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	selectedCardStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("62"))

	pendingCardStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

var stageTitles = map[domain.Stage]string{
	domain.StageRequest:             "Request",
	domain.StageBusinessDD:          "Business DD",
	domain.StageTechDD:              "Tech DD",
	domain.StageBuildingIntegration: "Integration",
	domain.StageAudit:               "Audit",
	domain.StageBuildingBundle:      "Bundle",
	domain.StageTesting:             "Testing",
	domain.StageProduction:          "Production",
}

func parseCardID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

func (a *App) View() string {
	columns := a.board.Columns()
	rendered := make([]string, 0, len(columns))
	for colIdx, col := range columns {
		var b strings.Builder
		b.WriteString(titleStyle.Render(stageTitles[col.Stage]))
		b.WriteString("\n")
		if len(col.Cards) == 0 {
			b.WriteString(cardStyle.Render("-"))
		}
		for cardIdx, card := range col.Cards {
			style := cardStyle
			if a.board.Locked(card.ID) {
				style = pendingCardStyle
			}
			if colIdx == a.columnIdx && cardIdx == a.cardIdx {
				style = selectedCardStyle
			}
			b.WriteString(style.Render(card.Symbol))
			b.WriteString("\n")
		}
		colStyle := columnStyle
		if colIdx == a.columnIdx {
			colStyle = focusedColumnStyle
		}
		rendered = append(rendered, colStyle.Render(b.String()))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if a.status != "" {
		view += "\n" + statusStyle.Render(a.status)
	}
	view += "\n" + a.help.View(a.keys)
	return view
}
