package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/stackplan/internal/planes"
)

var (
	planColorGreen = lipgloss.Color("#22c55e")
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planGreenStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)
)

// renderPlan produces a lipgloss-styled summary of the node groups.
func renderPlan(stackName string, groups []*planes.NodeGroup) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(fmt.Sprintf("  stackplan: %s", stackName)))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(planGroupStyle.Render("  " + g.Title() + "Plane"))
		b.WriteString("\n")
		b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
		b.WriteString("\n")

		names := make([]string, len(g.Planes))
		for i, p := range g.Planes {
			names[i] = string(p)
		}
		fmt.Fprintf(&b, "    Planes:    %s\n", strings.Join(names, ", "))
		fmt.Fprintf(&b, "    etcd:      %s\n", g.Role)
		fmt.Fprintf(&b, "    Instances: %s\n", groupSize(g))
		if g.LoadBalancer {
			b.WriteString("    ")
			b.WriteString(planGreenStyle.Render("Attached to DeisWebELB"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}
