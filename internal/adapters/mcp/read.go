package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// RegisterReadTools adds all read-only label tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, labels *application.Labels) {
	s.AddTool(listTool(), listHandler(labels))
	s.AddTool(treeTool(), treeHandler(labels))
	s.AddTool(showTool(), showHandler(labels))
	s.AddTool(searchTool(), searchHandler(labels))
}

func kindParam() mcp.ToolOption {
	return mcp.WithString("kind",
		mcp.Description("Label kind: tag or folder"),
		mcp.Enum("tag", "folder"),
		mcp.Required(),
	)
}

func kindOf(req mcp.CallToolRequest) (domain.Kind, error) {
	return application.ParseKind(req.GetString("kind", ""))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List labels. Without a parent lists the top-level tags or folders; with a parent lists its direct children in sort order."),
		kindParam(),
		mcp.WithString("parent",
			mcp.Description("Parent label ID or path (e.g. work/design or #work/design). Omit for the top level."),
		),
	)
}

func listHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		views, err := commands.NewListLabelsCommand(labels, kind, req.GetString("parent", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLabels(views)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display every tag or folder as an indented tree with display icons."),
		kindParam(),
	)
}

func treeHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		roots, err := commands.NewBuildTreeCommand(labels, kind).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(roots) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s.", kind.Plural())), nil
		}

		var sb strings.Builder
		for _, r := range roots {
			renderTree(&sb, r, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	fmt.Fprintf(sb, "%s%s %s", prefix, node.Icon.Glyph(), node.Name)
	if node.Pinned {
		sb.WriteString(" (pinned)")
	}
	sb.WriteByte('\n')
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show one label: path, breadcrumb of ancestors, display icon, color, pinned flag and children."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Label ID or path"),
			mcp.Required(),
		),
	)
}

func showHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		res, err := commands.NewShowLabelCommand(labels, kind, req.GetString("ref", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		l := res.Label
		var sb strings.Builder
		fmt.Fprintf(&sb, "id: %s\n", l.ID)
		fmt.Fprintf(&sb, "name: %s\n", l.Name)
		fmt.Fprintf(&sb, "path: %s\n", l.Path)
		if kind == domain.KindTag {
			fmt.Fprintf(&sb, "tag: %s\n", l.DisplayTag())
		}
		fmt.Fprintf(&sb, "depth: %d\n", l.Depth)
		fmt.Fprintf(&sb, "icon: %s\n", l.DisplayIcon)
		if l.ColorHex != nil {
			fmt.Fprintf(&sb, "color: %s\n", *l.ColorHex)
		}
		if l.Pinned {
			sb.WriteString("pinned: true\n")
		}

		crumbs := make([]string, 0, len(res.Ancestors))
		for _, a := range res.Ancestors {
			crumbs = append(crumbs, a.Name)
		}
		if len(crumbs) > 0 {
			fmt.Fprintf(&sb, "ancestors: %s\n", strings.Join(crumbs, " > "))
		}
		fmt.Fprintf(&sb, "descendants: %d\n", res.Descendants)
		for _, c := range res.Children {
			fmt.Fprintf(&sb, "  - %s\n", formatLabel(c))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy-search tag or folder names and paths. Returns matches by relevance."),
		kindParam(),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(labels, kind, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  (score %d)\n", formatLabel(r.LabelView), r.Score)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatLabels(views []application.LabelView) (*mcp.CallToolResult, error) {
	if len(views) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, v := range views {
		sb.WriteString(formatLabel(v))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatLabel(v application.LabelView) string {
	name := v.Path
	if v.Kind == domain.KindTag {
		name = v.DisplayTag()
	}
	s := fmt.Sprintf("%s %s  [%s]", v.DisplayIcon.Glyph(), name, v.ID)
	if v.ChildCount > 0 {
		s += fmt.Sprintf("  %d children", v.ChildCount)
	}
	if v.Pinned {
		s += "  pinned"
	}
	return s
}
