package logger

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bannerStyle frames the final "all done" message.
var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("10")).
	Padding(0, 2)

// Banner prints lines inside a rounded box, preceded by a blank line.
func Banner(lines ...string) {
	fmt.Fprintf(out, "\n%s\n", bannerStyle.Render(strings.Join(lines, "\n")))
}
