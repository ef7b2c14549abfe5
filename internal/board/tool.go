package board

import (
	"fmt"
	"strings"
)

// Tool is the interaction mode of the board.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool maps "pen" or "eraser" to a Tool.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	}
	return ToolPen, fmt.Errorf("unknown tool %q", s)
}
