package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// MinCardWidth is the narrowest card that can be laid out; narrower cards are
// reported as unmeasurable
const MinCardWidth = 16

// LimitsMaxLines clamps the limits paragraph of a card
const LimitsMaxLines = 2

// cardChrome is the border plus horizontal padding around card content
const cardChrome = 4

// CardRenderer draws plan cards at a fixed total width
type CardRenderer struct {
	theme *Theme
	width int
}

// NewCardRenderer creates a renderer producing cards width cells wide
func NewCardRenderer(theme *Theme, width int) *CardRenderer {
	return &CardRenderer{theme: theme, width: width}
}

// Width returns the total card width
func (r *CardRenderer) Width() int {
	return r.width
}

// Measure returns the natural height of a card in lines
func (r *CardRenderer) Measure(plan model.Plan) (int, bool) {
	if r.width < MinCardWidth {
		return 0, false
	}
	return lipgloss.Height(r.Render(plan, 0)), true
}

// Render draws a card with extra blank lines added at the bottom
func (r *CardRenderer) Render(plan model.Plan, extra int) string {
	width := r.width
	if width < MinCardWidth {
		width = MinCardWidth
	}
	if extra < 0 {
		extra = 0
	}
	body := strings.Join(r.lines(plan, width-cardChrome), "\n")
	return r.theme.Box(width).PaddingBottom(extra).Render(body)
}

func (r *CardRenderer) lines(plan model.Plan, width int) []string {
	t := r.theme
	var out []string

	out = append(out, r.header(plan, width))

	models, hiddenModels := plan.VisibleModels()
	if len(models) > 0 {
		chips := strings.Join(models, ", ")
		if hiddenModels > 0 {
			chips += " " + util.FormatOverflow(hiddenModels, "")
		}
		out = append(out, "", t.Heading().Render("MODELS"))
		for _, l := range util.Wrap(chips, width) {
			out = append(out, t.Chip().Render(l))
		}
	}

	if strings.TrimSpace(plan.Limits) != "" {
		out = append(out, "", t.Heading().Render("LIMITS"))
		for _, l := range clampLines(util.Wrap(plan.Limits, width), LimitsMaxLines, width) {
			out = append(out, t.Text().Render(l))
		}
	}

	features, hiddenFeatures := plan.VisibleFeatures()
	if len(features) > 0 {
		out = append(out, "", t.Heading().Render("FEATURES"))
		for _, f := range features {
			for i, l := range util.Wrap(f, width-2) {
				if i == 0 {
					out = append(out, t.Check().Render("✓")+" "+t.Text().Render(l))
				} else {
					out = append(out, "  "+t.Text().Render(l))
				}
			}
		}
		if hiddenFeatures > 0 {
			out = append(out, t.Muted().Render(util.FormatOverflow(hiddenFeatures, "more")))
		}
	}

	out = append(out, "", t.TypeBadge().Render(plan.Type.Label()))
	return out
}

// header puts the tier name on the left and the price on the right
func (r *CardRenderer) header(plan model.Plan, width int) string {
	price := util.FormatPrice(plan.Price)
	priceWidth := util.GetDisplayWidth(price)
	nameWidth := width - priceWidth - 1
	if nameWidth < 1 {
		return r.theme.Tier(plan.Name).Render(util.Truncate(plan.Name, width)) + "\n" +
			r.theme.Accent().Render(price)
	}
	name := util.Truncate(plan.Name, nameWidth)
	gap := width - util.GetDisplayWidth(name) - priceWidth
	return r.theme.Tier(plan.Name).Render(name) + strings.Repeat(" ", gap) + r.theme.Accent().Render(price)
}

// clampLines keeps at most max lines, marking the cut with an ellipsis
func clampLines(lines []string, max, width int) []string {
	if len(lines) <= max {
		return lines
	}
	out := append([]string(nil), lines[:max]...)
	last := out[max-1]
	if util.GetDisplayWidth(last) >= width {
		last = util.Truncate(last, width-1)
		last = strings.TrimSuffix(last, "…")
	}
	out[max-1] = last + "…"
	return out
}
