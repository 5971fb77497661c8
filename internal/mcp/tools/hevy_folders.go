package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// FolderService is the slice of the Hevy client the routine-folder tools need.
type FolderService interface {
	ListRoutineFolders(ctx context.Context, page, pageSize int) (json.RawMessage, error)
	GetRoutineFolder(ctx context.Context, folderID int) (json.RawMessage, error)
	CreateRoutineFolder(ctx context.Context, title string) (json.RawMessage, error)
	UpdateRoutineFolder(ctx context.Context, folderID int, title string) (json.RawMessage, error)
	DeleteRoutineFolder(ctx context.Context, folderID int) (json.RawMessage, error)
}

type GetRoutineFoldersHandler struct {
	Service FolderService
}

func (h *GetRoutineFoldersHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	raw, err := h.Service.ListRoutineFolders(ctx, optionalInt(args, "page", 1), optionalInt(args, "page_size", 10))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type GetRoutineFolderHandler struct {
	Service FolderService
}

func (h *GetRoutineFolderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := intArgument(req.GetArguments()["folder_id"], "folder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.Service.GetRoutineFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type CreateRoutineFolderHandler struct {
	Service FolderService
}

func (h *CreateRoutineFolderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, _ := req.GetArguments()["title"].(string)
	if title == "" {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	raw, err := h.Service.CreateRoutineFolder(ctx, title)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type UpdateRoutineFolderHandler struct {
	Service FolderService
}

func (h *UpdateRoutineFolderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	folderID, err := intArgument(args["folder_id"], "folder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, _ := args["title"].(string)
	if title == "" {
		return mcp.NewToolResultError("title parameter is required"), nil
	}
	raw, err := h.Service.UpdateRoutineFolder(ctx, folderID, title)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}

type DeleteRoutineFolderHandler struct {
	Service FolderService
}

func (h *DeleteRoutineFolderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folderID, err := intArgument(req.GetArguments()["folder_id"], "folder_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := h.Service.DeleteRoutineFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(prettyJSON(raw)), nil
}
