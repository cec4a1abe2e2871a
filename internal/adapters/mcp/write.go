package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"takenotes/internal/application"
	"takenotes/internal/application/commands"
	"takenotes/internal/domain"
)

// RegisterWriteTools adds all label-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, labels *application.Labels) {
	s.AddTool(createTool(), createHandler(labels))
	s.AddTool(renameTool(), renameHandler(labels))
	s.AddTool(moveTool(), moveHandler(labels))
	s.AddTool(deleteTool(), deleteHandler(labels))
	s.AddTool(reorderTool(), reorderHandler(labels))
	s.AddTool(pinTool(), pinHandler(labels))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a tag or folder. Give either a name (with an optional parent) or a full path such as school/winter26/math; missing path segments are created."),
		kindParam(),
		mcp.WithString("name",
			mcp.Description("Name of the new label (no slashes)"),
		),
		mcp.WithString("parent",
			mcp.Description("Parent label ID or path. Omit to create at the top level."),
		),
		mcp.WithString("path",
			mcp.Description("Full label path to ensure, instead of name/parent"),
		),
		mcp.WithString("icon",
			mcp.Description("Optional icon: an emoji, emoji:<e>, or symbol:<name>"),
		),
		mcp.WithString("color",
			mcp.Description("Optional color as #RRGGBB or #RRGGBBAA"),
		),
	)
}

func createHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		icon, err := domain.ParseIcon(req.GetString("icon", ""))
		if err != nil {
			return toolError(err)
		}
		style := application.LabelStyle{Icon: icon}
		if color := req.GetString("color", ""); color != "" {
			style.ColorHex = &color
		}

		var result *commands.CreateLabelResult
		if path := req.GetString("path", ""); path != "" {
			result, err = commands.NewCreatePathCommand(labels, kind, path, style).Execute(ctx)
		} else {
			result, err = commands.NewCreateLabelCommand(labels, kind, req.GetString("parent", ""), req.GetString("name", ""), style).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s [%s]", result.Message, result.Label.ID)), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a tag or folder. Paths of all descendants are updated."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Label ID or path"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New name (no slashes)"),
			mcp.Required(),
		),
	)
}

func renameHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewRenameCommand(labels, kind, req.GetString("ref", ""), req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a tag or folder under another label of the same kind, or to the top level. Moving a label under itself or its own descendant is rejected."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Label ID or path to move"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("New parent ID or path. Omit to move to the top level."),
		),
	)
}

func moveHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewMoveCommand(labels, kind, req.GetString("ref", ""), req.GetString("parent", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a tag or folder together with everything below it."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Label ID or path to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewDeleteCommand(labels, kind, req.GetString("ref", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reorder ---

func reorderTool() mcp.Tool {
	return mcp.NewTool("reorder",
		mcp.WithDescription("Set a label's sort order among its siblings. Lower values are listed first."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Label ID or path"),
			mcp.Required(),
		),
		mcp.WithNumber("sort_order",
			mcp.Description("New sort order"),
			mcp.Required(),
		),
	)
}

func reorderHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewReorderCommand(labels, kind, req.GetString("ref", ""), req.GetInt("sort_order", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- pin ---

func pinTool() mcp.Tool {
	return mcp.NewTool("pin",
		mcp.WithDescription("Pin or unpin a tag. Folders cannot be pinned."),
		kindParam(),
		mcp.WithString("ref",
			mcp.Description("Tag ID or path"),
			mcp.Required(),
		),
		mcp.WithBoolean("pinned",
			mcp.Description("true to pin (default), false to unpin"),
		),
	)
}

func pinHandler(labels *application.Labels) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindOf(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewPinCommand(labels, kind, req.GetString("ref", ""), req.GetBool("pinned", true)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
