package server

import (
	"encoding/json"
	"fmt"

	"github.com/palettepal/palettepal/internal/extract"
	"github.com/palettepal/palettepal/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_nearest_name":
		return s.handleColorNearestName(args)
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "palette_extract":
		return s.handlePaletteExtract(args)
	case "image_info":
		return s.handleImageInfo(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Color argument resolution ===

// colorArgs is the shared color-specification input: exactly one of Hex,
// Name, RGB, or HSL must be set.
type colorArgs struct {
	Hex  string `json:"hex,omitempty"`
	Name string `json:"name,omitempty"`
	RGB  *struct {
		R int `json:"r"`
		G int `json:"g"`
		B int `json:"b"`
	} `json:"rgb,omitempty"`
	HSL *struct {
		H float64 `json:"h"`
		S float64 `json:"s"`
		L float64 `json:"l"`
	} `json:"hsl,omitempty"`
	RYBSpace bool `json:"ryb_space,omitempty"`
}

// resolve turns the argument set into an engine Color.
func (a *colorArgs) resolve() (palette.Color, error) {
	space := palette.SpaceStandard
	if a.RYBSpace {
		space = palette.SpaceRYB
	}

	given := 0
	for _, set := range []bool{a.Hex != "", a.Name != "", a.RGB != nil, a.HSL != nil} {
		if set {
			given++
		}
	}
	if given != 1 {
		return palette.Color{}, fmt.Errorf("specify exactly one of hex, name, rgb, or hsl (got %d)", given)
	}

	switch {
	case a.Hex != "":
		c, err := palette.FromHex(a.Hex)
		if err != nil {
			return palette.Color{}, err
		}
		if a.RYBSpace {
			rgb := c.RGB()
			c = palette.FromRGB(rgb.R, rgb.G, rgb.B, palette.SpaceRYB)
		}
		return c, nil
	case a.Name != "":
		c, err := palette.FromName(a.Name)
		if err != nil {
			return palette.Color{}, err
		}
		if a.RYBSpace {
			rgb := c.RGB()
			c = palette.FromRGB(rgb.R, rgb.G, rgb.B, palette.SpaceRYB)
		}
		return c, nil
	case a.RGB != nil:
		return palette.FromRGB(a.RGB.R, a.RGB.G, a.RGB.B, space), nil
	default:
		return palette.New(a.HSL.H, a.HSL.S, a.HSL.L, space), nil
	}
}

// === Result types ===

// ColorInfo carries every representation of one color.
type ColorInfo struct {
	Hex     string          `json:"hex"`
	RGB     palette.RGB     `json:"rgb"`
	HSL     palette.HSL     `json:"hsl"`
	RYB     palette.RYB     `json:"ryb"`
	RGBNorm palette.RGBNorm `json:"rgb_normalized"`
	HSLNorm palette.HSLNorm `json:"hsl_normalized"`
	Space   string          `json:"space"`
	Name    string          `json:"name,omitempty"` // exact CSS name, if any
}

func colorInfo(c palette.Color) ColorInfo {
	info := ColorInfo{
		Hex:     c.Hex(),
		RGB:     c.RGB(),
		HSL:     c.HSLInRGBSpace(),
		RYB:     c.RYB(),
		RGBNorm: c.RGBNormalized(),
		HSLNorm: c.HSLNormalized(),
		Space:   c.Space().String(),
	}
	if name, ok := palette.NameOf(c.RGB()); ok {
		info.Name = name
	}
	return info
}

// === Handlers ===

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.resolve()
	if err != nil {
		return nil, err
	}
	return colorInfo(c), nil
}

// NearestNameResult reports the closest CSS name to a color.
type NearestNameResult struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`      // hex value of the named color
	Distance float64 `json:"distance"` // CIE Lab distance; 0 means exact
	Exact    bool    `json:"exact"`
}

func (s *Server) handleColorNearestName(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.resolve()
	if err != nil {
		return nil, err
	}

	name, dist := palette.NearestName(c.RGB())
	rgb, err := palette.LookupName(name)
	if err != nil {
		return nil, err
	}
	return &NearestNameResult{
		Name:     name,
		Hex:      palette.RGBToHex(rgb.R, rgb.G, rgb.B),
		Distance: dist,
		Exact:    dist == 0,
	}, nil
}

type colorHarmonyArgs struct {
	colorArgs
	Harmony string `json:"harmony"`
}

// HarmonyResult is the ordered palette a harmony produced. Base is the
// resolved input color; Colors maps one-to-one onto display slots.
type HarmonyResult struct {
	Harmony string      `json:"harmony"`
	Base    ColorInfo   `json:"base"`
	Colors  []ColorInfo `json:"colors"`
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := a.colorArgs.resolve()
	if err != nil {
		return nil, err
	}
	harmony, err := palette.ParseHarmony(a.Harmony)
	if err != nil {
		return nil, err
	}

	related := c.Harmonize(harmony)
	colors := make([]ColorInfo, len(related))
	for i, rc := range related {
		colors[i] = colorInfo(rc)
	}
	return &HarmonyResult{
		Harmony: string(harmony),
		Base:    colorInfo(c),
		Colors:  colors,
	}, nil
}

type paletteExtractArgs struct {
	Path       string  `json:"path"`
	Count      int     `json:"count"`
	BlurRadius float64 `json:"blur_radius"`
}

// ExtractedSwatch is one dominant color of an image.
type ExtractedSwatch struct {
	ColorInfo
	Share float64 `json:"share"` // percent of sampled pixels
}

// ExtractResult lists an image's dominant colors, most common first.
type ExtractResult struct {
	Path     string            `json:"path"`
	Swatches []ExtractedSwatch `json:"swatches"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	swatches, err := extract.Dominant(img, a.Count, extract.Options{BlurRadius: a.BlurRadius})
	if err != nil {
		return nil, err
	}

	out := make([]ExtractedSwatch, len(swatches))
	for i, sw := range swatches {
		out[i] = ExtractedSwatch{ColorInfo: colorInfo(sw.Color), Share: sw.Share}
	}
	return &ExtractResult{Path: a.Path, Swatches: out}, nil
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return extract.FileInfo(s.cache, a.Path)
}
