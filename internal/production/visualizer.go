// Package production provides production integrations: persistence, event
// publishing, visualization.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/langtour/internal/primitives"
)

// DefaultVisualizer renders the lesson sequence.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the tour: one node per lesson,
// clustered by primary tag, chained in running order. Completed lessons are
// filled.
func (v *DefaultVisualizer) ExportDOT(tourID string, lessons []primitives.Lesson, done map[string]bool) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", tourID)
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for _, group := range groupByTag(lessons) {
		if group.tag != "" {
			fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+group.tag)
			fmt.Fprintf(&buf, "    label=%q;\n", group.tag)
		}
		for _, l := range group.lessons {
			style := ""
			if done[l.ID] {
				style = ` style=filled fillcolor=lightgreen`
			}
			fmt.Fprintf(&buf, "    %q [label=%q%s];\n", l.ID, l.Title, style)
		}
		if group.tag != "" {
			buf.WriteString("  }\n")
		}
	}

	for i := 1; i < len(lessons); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", lessons[i-1].ID, lessons[i].ID, i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the tour config to JSON.
func (v *DefaultVisualizer) ExportJSON(config primitives.TourConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

type tagGroup struct {
	tag     string
	lessons []primitives.Lesson
}

// groupByTag groups lessons by their first tag, in order of first
// appearance. Untagged lessons share the group with an empty tag.
func groupByTag(lessons []primitives.Lesson) []tagGroup {
	var groups []tagGroup
	index := make(map[string]int)
	for _, l := range lessons {
		tag := ""
		if len(l.Tags) > 0 {
			tag = l.Tags[0]
		}
		i, ok := index[tag]
		if !ok {
			i = len(groups)
			index[tag] = i
			groups = append(groups, tagGroup{tag: tag})
		}
		groups[i].lessons = append(groups[i].lessons, l)
	}
	return groups
}
