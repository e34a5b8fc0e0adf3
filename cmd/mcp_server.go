package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/replaykit/replay-cli/internal/platform"
	"github.com/replaykit/replay-cli/internal/script"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider *platform.Provider
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all replay-cli tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer(
		"replay-cli",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// run_script
	s.mcp.AddTool(
		mcp.NewTool("run_script",
			mcp.WithDescription("Replay an input script: one action per line, '<keyword> <delay_ms> [args]' with keywords move, click, hold, release, hotkey, write. Delays are in milliseconds and '#' starts a comment. Execution is sequential and stops at the first failure."),
			mcp.WithString("script", mcp.Description("Script text to execute"), mcp.Required()),
			mcp.WithString("name", mcp.Description("Named script to run when the text contains '--- name' sections")),
		),
		s.handleRunScript,
	)

	// check_script
	s.mcp.AddTool(
		mcp.NewTool("check_script",
			mcp.WithDescription("Validate an input script without executing it. Returns the parsed actions, or the parse error with its line number."),
			mcp.WithString("script", mcp.Description("Script text to validate"), mcp.Required()),
		),
		s.handleCheckScript,
	)

	// move
	s.mcp.AddTool(
		mcp.NewTool("move",
			mcp.WithDescription("Move the cursor to absolute screen coordinates"),
			mcp.WithNumber("x", mcp.Description("Target X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Target Y coordinate"), mcp.Required()),
		),
		s.handleMove,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click a mouse button at the current cursor position"),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle (default: left)")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClick,
	)

	// key
	s.mcp.AddTool(
		mcp.NewTool("key",
			mcp.WithDescription("Press a key combination, e.g. 'ctrl+c', 'ctrl+shift+t', 'enter'"),
			mcp.WithString("combo", mcp.Description("Key combination, '+'-joined"), mcp.Required()),
		),
		s.handleKey,
	)

	// write
	s.mcp.AddTool(
		mcp.NewTool("write",
			mcp.WithDescription("Type literal text into whatever currently has focus"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleWrite,
	)
}

// yamlResult marshals v to YAML for a tool text result.
func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *mcpServer) inputter() (platform.Inputter, error) {
	if s.provider.Inputter == nil {
		return nil, fmt.Errorf("input injection not available on this platform")
	}
	return s.provider.Inputter, nil
}

func (s *mcpServer) handleRunScript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("script")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := req.GetString("name", "")

	lib, err := script.ParseLibrary(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sel, err := selectScript(lib, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in, err := s.inputter()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := script.NewRunner(in).Run(ctx, sel); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(RunResult{
		OK:        true,
		Action:    "run",
		Script:    sel.Name,
		Actions:   len(sel.Actions),
		Completed: len(sel.Actions),
	})
}

func (s *mcpServer) handleCheckScript(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("script")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lib, err := script.ParseLibrary(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	checks := make([]ScriptCheck, len(lib.Scripts))
	for i, sc := range lib.Scripts {
		checks[i] = ScriptCheck{Name: sc.Name, Actions: actionInfos(sc)}
	}
	return yamlResult(CheckResult{OK: true, Action: "check", Scripts: checks})
}

func (s *mcpServer) handleMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	x := req.GetInt("x", 0)
	y := req.GetInt("y", 0)

	in, err := s.inputter()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := in.MoveCursor(x, y); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(InjectResult{OK: true, Action: "move", X: x, Y: y})
}

func (s *mcpServer) handleClick(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	button, err := platform.ParseMouseButton(req.GetString("button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	count := 1
	if req.GetBool("double", false) {
		count = 2
	}

	in, err := s.inputter()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := in.Click(button, count); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(InjectResult{OK: true, Action: "click", Button: button.String()})
}

func (s *mcpServer) handleKey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	combo, err := req.RequireString("combo")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	keys, err := platform.ParseKeyCombo(combo)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in, err := s.inputter()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := in.KeyCombo(keys); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(InjectResult{OK: true, Action: "key", Key: combo})
}

func (s *mcpServer) handleWrite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in, err := s.inputter()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := in.TypeText(text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(InjectResult{OK: true, Action: "write", Text: text})
}
