package compare

import (
	"testing"

	"github.com/penwyp/go-plan-compare/internal/core/balance"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlans() []model.Plan {
	return []model.Plan{
		{ID: "copilot-pro", Tool: model.ToolGitHubCopilot, Name: "Pro", Price: 10, Type: model.PlanIndividual},
		{ID: "cursor-pro", Tool: model.ToolCursor, Name: "Pro", Price: 20, Type: model.PlanIndividual},
		{ID: "cursor-teams", Tool: model.ToolCursor, Name: "Teams", Price: 40, Type: model.PlanEnterprise},
		{ID: "claude-max", Tool: model.ToolClaudeCode, Name: "Max 20x", Price: 200, Type: model.PlanIndividual},
	}
}

// heights gives every card a fixed height by plan ID
func heights(h map[string]int) MeasurerFunc {
	return func(p model.Plan) (int, bool) {
		v, ok := h[p.ID]
		return v, ok
	}
}

func TestCompose_AllToolsPresent(t *testing.T) {
	result := Compose(nil, 200, model.FilterAll, Options{})

	require.Len(t, result.Columns, model.NumTools)
	for i, tool := range model.Tools() {
		assert.Equal(t, tool, result.Columns[i].Tool)
		assert.NotNil(t, result.Columns[i].Entries)
		assert.Empty(t, result.Columns[i].Entries)
	}
	assert.Equal(t, 0, result.Count())
}

func TestCompose_FiltersSortsGroups(t *testing.T) {
	result := Compose(testPlans(), 50, model.FilterAll, Options{})

	assert.Equal(t, 50, result.Budget)
	assert.Equal(t, model.FilterAll, result.Filter)
	assert.Equal(t, 3, result.Count())

	cursor := result.Column(model.ToolCursor)
	require.Len(t, cursor.Entries, 2)
	assert.Equal(t, "cursor-teams", cursor.Entries[0].Plan.ID)
	assert.Equal(t, "cursor-pro", cursor.Entries[1].Plan.ID)
	assert.Empty(t, result.Column(model.ToolClaudeCode).Entries)
	assert.Empty(t, result.Column(model.ToolWindsurf).Entries)
}

func TestCompose_NilMeasurerLeavesPaddingZero(t *testing.T) {
	result := Compose(testPlans(), 200, model.FilterAll, Options{Gap: 1})
	for _, col := range result.Columns {
		for _, e := range col.Entries {
			assert.Equal(t, 0, e.ExtraPadding)
		}
	}
}

func TestCompose_Balances(t *testing.T) {
	m := heights(map[string]int{
		"copilot-pro":  10,
		"cursor-pro":   12,
		"cursor-teams": 14,
		"claude-max":   16,
	})

	result := Compose(testPlans(), 200, model.FilterAll, Options{Measurer: m, Gap: 1})

	// Cursor is tallest: 14 + 1 + 12 = 27
	cursor := result.Column(model.ToolCursor)
	assert.Equal(t, 0, cursor.Entries[0].ExtraPadding)
	assert.Equal(t, 0, cursor.Entries[1].ExtraPadding)
	assert.Equal(t, 17, result.Column(model.ToolGitHubCopilot).Entries[0].ExtraPadding)
	assert.Equal(t, 11, result.Column(model.ToolClaudeCode).Entries[0].ExtraPadding)
}

func TestCompose_UnmeasurableCard(t *testing.T) {
	m := heights(map[string]int{
		"cursor-pro":   12,
		"cursor-teams": 14,
		"claude-max":   16,
	})

	result := Compose(testPlans(), 200, model.FilterAll, Options{Measurer: m, Gap: 1})
	assert.Equal(t, 0, result.Column(model.ToolGitHubCopilot).Entries[0].ExtraPadding)
	assert.Equal(t, 11, result.Column(model.ToolClaudeCode).Entries[0].ExtraPadding)
}

func TestCompose_ReusesBalancer(t *testing.T) {
	m := heights(map[string]int{"copilot-pro": 10, "cursor-pro": 12, "cursor-teams": 14, "claude-max": 16})
	b := balance.NewBalancer(1)
	opts := Options{Measurer: m, Balancer: b}

	first := Compose(testPlans(), 200, model.FilterAll, opts)
	second := Compose(testPlans(), 200, model.FilterAll, opts)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, b.Passes())

	Compose(testPlans(), 20, model.FilterAll, opts)
	assert.Equal(t, 2, b.Passes())
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	plans := testPlans()
	Compose(plans, 200, model.FilterIndividual, Options{})
	assert.Equal(t, testPlans(), plans)
}

func TestResult_ColumnUnknownTool(t *testing.T) {
	col := Result{}.Column(model.ToolWindsurf)
	assert.Equal(t, model.ToolWindsurf, col.Tool)
	assert.Empty(t, col.Entries)
}
