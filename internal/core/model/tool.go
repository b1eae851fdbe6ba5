package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownTool is returned when a tool identifier is not one of the fixed four
var ErrUnknownTool = errors.New("unknown tool")

// Tool identifies one of the coding assistants being compared
type Tool int

const (
	ToolGitHubCopilot Tool = iota
	ToolCursor
	ToolClaudeCode
	ToolWindsurf

	// NumTools is the size of the closed tool set
	NumTools = 4
)

type toolInfo struct {
	id          string
	displayName string
}

// toolTable is indexed by Tool and must list every tool exactly once
var toolTable = [NumTools]toolInfo{
	ToolGitHubCopilot: {id: "github-copilot", displayName: "GitHub Copilot"},
	ToolCursor:        {id: "cursor", displayName: "Cursor"},
	ToolClaudeCode:    {id: "claude-code", displayName: "Claude Code"},
	ToolWindsurf:      {id: "windsurf", displayName: "Windsurf"},
}

// Tools returns every tool in column display order
func Tools() []Tool {
	return []Tool{ToolGitHubCopilot, ToolCursor, ToolClaudeCode, ToolWindsurf}
}

// ParseTool converts a wire identifier such as "claude-code" into a Tool
func ParseTool(s string) (Tool, error) {
	for i, info := range toolTable {
		if info.id == s {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Valid reports whether t is inside the closed set
func (t Tool) Valid() bool {
	return t >= 0 && int(t) < NumTools
}

// ID returns the wire identifier of the tool
func (t Tool) ID() string {
	if !t.Valid() {
		return "tool(" + strconv.Itoa(int(t)) + ")"
	}
	return toolTable[t].id
}

// DisplayName returns the column header of the tool
func (t Tool) DisplayName() string {
	if !t.Valid() {
		return t.ID()
	}
	return toolTable[t].displayName
}

func (t Tool) String() string {
	return t.ID()
}

func (t Tool) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTool, int(t))
	}
	return []byte(toolTable[t].id), nil
}

func (t *Tool) UnmarshalText(text []byte) error {
	parsed, err := ParseTool(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
