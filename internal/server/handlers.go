package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/filters"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
)

var (
	errInvalidArguments = errors.New("invalid arguments")
	errUnknownTool      = errors.New("unknown tool")
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_to_hex", "color_sample").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Unknown tools and undecodable arguments return -32602. Tool execution
// errors return -32000. A color that is not recognized is not an error for
// the filter tools; their result reports has_value=false.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool call failed", zap.String("tool", params.Name), zap.Error(err))
		if errors.Is(err, errInvalidArguments) || errors.Is(err, errUnknownTool) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion filters
	case filters.NameToRGB, filters.NameToHex, filters.NameToHSL, filters.NameExtract:
		return s.handleFilter(name, args)
	case "color_parse":
		return s.handleColorParse(args)

	// Image operations
	case "color_sample":
		return s.handleColorSample(args)
	case "color_palette":
		return s.handleColorPalette(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Absent arguments decode as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArguments, err)
	}
	return nil
}

// === Conversion Filter Handlers ===

type filterArgs struct {
	Color   string `json:"color"`
	Channel string `json:"channel,omitempty"`
}

// FilterResult is the result of a filter tool. Value is null when the
// input was not recognized.
type FilterResult struct {
	Value    *string `json:"value"`
	HasValue bool    `json:"has_value"`
}

func (s *Server) handleFilter(name string, args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var fargs filters.Arguments
	if name == filters.NameExtract {
		fargs = filters.Arguments{a.Channel}
	}

	v, err := s.filters.Invoke(name, a.Color, fargs, filters.EvalContext{})
	if err != nil {
		return nil, err
	}
	return FilterResult{Value: v.Ptr(), HasValue: !v.IsNil()}, nil
}

type colorParseArgs struct {
	Color string `json:"color"`
}

// ParseResult embeds the full description of a recognized color.
type ParseResult struct {
	HasValue bool `json:"has_value"`
	*colorspace.Description
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorParseArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	d, ok := colorspace.Describe(a.Color)
	if !ok {
		return ParseResult{}, nil
	}
	return ParseResult{HasValue: true, Description: d}, nil
}

// === Image Operation Handlers ===

type colorSampleArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleColorSample(args json.RawMessage) (interface{}, error) {
	var a colorSampleArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type colorPaletteArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.PaletteCount
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColors(img, a.Count, region)
}

type colorSwatchArgs struct {
	Color  string `json:"color"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  bool   `json:"label"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	rgb, _, _, ok := colorspace.Resolve(a.Color)
	if !ok {
		return nil, fmt.Errorf("unrecognized color: %q", a.Color)
	}
	if a.Width == 0 {
		a.Width = s.cfg.SwatchWidth
	}
	if a.Height == 0 {
		a.Height = s.cfg.SwatchHeight
	}
	return imaging.RenderSwatch(rgb, imaging.SwatchOptions{Width: a.Width, Height: a.Height, Label: a.Label})
}
