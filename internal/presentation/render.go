package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	indexStyle  = lipgloss.NewStyle().Faint(true).Width(4).Align(lipgloss.Right)
	familyStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle  = lipgloss.NewStyle().Italic(true)
)

// RenderRegister renders a register as a header line followed by one numbered line per name.
func RenderRegister(reg RegisterDTO) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Register (%d/%d)", reg.Size, reg.Capacity)))

	if len(reg.Names) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("  no names"))
		return b.String()
	}

	for i, n := range reg.Names {
		b.WriteString("\n")
		b.WriteString(indexStyle.Render(fmt.Sprintf("%d.", i)))
		b.WriteString(" ")
		b.WriteString(n.FirstName)
		b.WriteString(" ")
		b.WriteString(familyStyle.Render(n.FamilyName))
	}
	return b.String()
}
