package generator

import (
	"fmt"
	"strings"
)

// FlowDiagram renders an ordered step list as a mermaid flowchart in
// graph TD form. Each step becomes one node, chained to the next.
func FlowDiagram(steps []string) string {
	lines := []string{"graph TD"}
	for i, step := range steps {
		lines = append(lines, fmt.Sprintf("    N%d[%s]", i, step))
		if i < len(steps)-1 {
			lines = append(lines, fmt.Sprintf("    N%d --> N%d", i, i+1))
		}
	}
	return strings.Join(lines, "\n")
}
