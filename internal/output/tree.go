package output

import (
	"fmt"
	"strings"

	"github.com/marcus/wingsfly/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	ID       string
	Title    string
	Detail   string // time or other trailing text
	Status   models.Status
	Tags     []models.Tag
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowStatus bool // Whether to show status indicator
	ShowTags   bool
}

// statusMark returns a status indicator symbol
func statusMark(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return " \u2713" // ✓
	case models.StatusInProgress:
		return " \u25cf" // ●
	default:
		return ""
	}
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		var parts []string
		if node.ID != "" {
			parts = append(parts, node.ID+":")
		}
		parts = append(parts, node.Title)
		if node.Detail != "" {
			parts = append(parts, "("+node.Detail+")")
		}
		if opts.ShowTags && len(node.Tags) > 0 {
			tags := make([]string, len(node.Tags))
			for j, t := range node.Tags {
				tags[j] = "#" + string(t)
			}
			parts = append(parts, strings.Join(tags, " "))
		}
		if opts.ShowStatus && node.Status != "" {
			parts = append(parts, FormatStatus(node.Status)+statusMark(node.Status))
		}

		lines = append(lines, prefix+connector+strings.Join(parts, " "))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// TaskNodes converts task cards into leaf nodes
func TaskNodes(tasks []models.Task) []TreeNode {
	nodes := make([]TreeNode, 0, len(tasks))
	for _, t := range tasks {
		detail := t.Time
		if t.Progress != "" {
			detail = fmt.Sprintf("%s, %s", t.Time, t.Progress)
		}
		status := t.Status
		if !models.IsValidStatus(status) {
			status = models.NormalizeStatus(string(status))
		}
		nodes = append(nodes, TreeNode{
			ID:     t.ID,
			Title:  t.Title,
			Detail: detail,
			Status: status,
			Tags:   t.Tags,
		})
	}
	return nodes
}

// RenderDay renders a heading line for the date followed by its tasks
func RenderDay(date models.DateEntry, tasks []models.Task, opts TreeRenderOptions) string {
	header := fmt.Sprintf("%s %d", date.Label, date.Value)
	if len(tasks) == 0 {
		return header + "\n\u2514\u2500\u2500 (no tasks)"
	}
	return header + "\n" + RenderTree(TreeNode{Children: TaskNodes(tasks)}, opts)
}
