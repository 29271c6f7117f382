package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
	"github.com/mrtajniak/AvidDNxRecommender/matcher"
)

// Color palette - modern, readable
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Violet
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorText      = lipgloss.Color("#F9FAFB") // White
	colorTextDim   = lipgloss.Color("#9CA3AF") // Light gray
	colorBorder    = lipgloss.Color("#374151") // Dark gray
)

var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorPrimary).
			Padding(0, 2).
			MarginBottom(1)

	// Section headers
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				MarginTop(1)

	// Step counter, e.g. "Step 2 of 5"
	stepCountStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Selection list
	cursorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Answered-so-far summary
	answerLabelStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Width(12)

	answerValueStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	// Result profile cards
	profileBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginTop(1)

	profileNameStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Free-form entry box
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginTop(1)
)

// stepTitle is the question shown for a wizard step
func stepTitle(s step) string {
	switch s {
	case stepFrameRate:
		return "Frame rate"
	case stepResolution:
		return "Resolution"
	case stepChroma:
		return "Chroma subsampling"
	case stepDepth:
		return "Bit depth"
	default:
		return "Preference"
	}
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	title := titleStyle.Render(" 🎞 Avid DNx Profile Recommender ")
	b.WriteString(title + "\n")

	switch m.State {
	case StateSelecting:
		b.WriteString(m.renderSelectView())

	case StateEntering:
		b.WriteString(m.renderEnterView())

	case StateResults:
		b.WriteString(m.renderResultsView())
	}

	b.WriteString("\n" + helpStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m Model) helpLine() string {
	switch m.State {
	case StateEntering:
		return "  [Enter] Accept  •  [Esc] Back"
	case StateResults:
		return "  [↑/↓] Scroll  •  [R] New query  •  [Q] Quit"
	default:
		return "  [↑/↓] Move  •  [Enter] Select  •  [Esc] Back  •  [Q] Quit"
	}
}

func (m Model) renderSelectView() string {
	var b strings.Builder

	b.WriteString(m.renderAnswers())

	counter := stepCountStyle.Render(fmt.Sprintf("Step %d of %d", m.Step+1, stepCount))
	b.WriteString("\n  " + counter + "\n")
	b.WriteString(sectionHeaderStyle.Render("  "+stepTitle(m.Step)) + "\n\n")

	for i, opt := range m.options() {
		if i == m.Cursor {
			b.WriteString("  " + cursorStyle.Render("› ") + selectedOptionStyle.Render(opt.label) + "\n")
		} else {
			b.WriteString("    " + optionStyle.Render(opt.label) + "\n")
		}
	}

	return b.String()
}

func (m Model) renderEnterView() string {
	var b strings.Builder

	b.WriteString(m.renderAnswers())
	b.WriteString("\n")
	b.WriteString(sectionHeaderStyle.Render("  "+stepTitle(m.Step)) + "\n")
	b.WriteString(inputBoxStyle.Render(m.Input.View()))
	b.WriteString("\n")

	return b.String()
}

// renderAnswers shows the fields answered so far
func (m Model) renderAnswers() string {
	var lines []string
	for s := stepFrameRate; s < m.Step; s++ {
		lines = append(lines,
			answerLabelStyle.Render(stepTitle(s))+answerValueStyle.Render(m.answers[s]))
	}
	if len(lines) == 0 {
		return ""
	}
	return "  " + strings.Join(lines, "\n  ") + "\n"
}

func (m Model) renderResultsView() string {
	var b strings.Builder

	b.WriteString("\n  " + answerValueStyle.Render(matcher.DescribeQuery(m.Query)) + "\n")

	switch {
	case len(m.Matches) == 0:
		b.WriteString("\n" + warningStyle.Render("  ⊘ No matching profile found") + "\n")
		b.WriteString(answerValueStyle.Render("  Nothing in the catalog satisfies these parameters, even with broadcast defaults.") + "\n")

	case m.Relaxed:
		header := fmt.Sprintf("  ~ %d close match(es) using broadcast defaults", len(m.Matches))
		b.WriteString("\n" + warningStyle.Render(header) + "\n")
		b.WriteString(answerValueStyle.Render("  No exact match; unmet criteria were substituted with 1080p / 4:2:2 / 8-bit / 30 fps.") + "\n")
		b.WriteString(m.Results.View())

	default:
		header := fmt.Sprintf("  ✓ %d matching profile(s)", len(m.Matches))
		b.WriteString("\n" + successStyle.Render(header) + "\n")
		b.WriteString(m.Results.View())
	}

	return b.String()
}

// renderMatches builds the scrollable results content
func (m Model) renderMatches() string {
	var cards []string
	for _, p := range m.Matches {
		cards = append(cards, profileBoxStyle.Render(profileCard(p)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// profileCard renders one profile's fields for the results list
func profileCard(p catalog.Profile) string {
	lines := []string{
		profileNameStyle.Render(p.ID()),
		fieldLabelStyle.Render("Resolutions") + fieldValueStyle.Render(strings.Join(p.Resolutions, ", ")),
		fieldLabelStyle.Render("Frame rates") + fieldValueStyle.Render(displayFrameRates(p.FrameRates)),
		fieldLabelStyle.Render("Depth") + fieldValueStyle.Render(string(p.ColorDepth)),
		fieldLabelStyle.Render("Chroma") + fieldValueStyle.Render(string(p.Chroma)),
		fieldLabelStyle.Render("Class") + fieldValueStyle.Render(string(p.Preference)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func displayFrameRates(rates []string) string {
	out := make([]string, len(rates))
	for i, r := range rates {
		out[i] = strings.TrimSuffix(matcher.DisplayFrameRate(r), " fps")
	}
	return strings.Join(out, ", ")
}
