package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the shared input schema fragment for specifying a color.
// Exactly one of hex, name, rgb, or hsl must be present.
func colorProperty() map[string]interface{} {
	return map[string]interface{}{
		"hex": map[string]interface{}{
			"type":        "string",
			"description": "Hex color string, \"#rrggbb\" or \"rrggbb\" (case-insensitive)",
		},
		"name": map[string]interface{}{
			"type":        "string",
			"description": "CSS color name, e.g. \"rebeccapurple\"",
		},
		"rgb": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"r": map[string]interface{}{"type": "integer", "description": "Red (0-255)"},
				"g": map[string]interface{}{"type": "integer", "description": "Green (0-255)"},
				"b": map[string]interface{}{"type": "integer", "description": "Blue (0-255)"},
			},
			"required":    []string{"r", "g", "b"},
			"description": "RGB components",
		},
		"hsl": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"h": map[string]interface{}{"type": "number", "description": "Hue (0-360 degrees)"},
				"s": map[string]interface{}{"type": "number", "description": "Saturation (0-100 percent)"},
				"l": map[string]interface{}{"type": "number", "description": "Lightness (0-100 percent)"},
			},
			"required":    []string{"h", "s", "l"},
			"description": "HSL components",
		},
		"ryb_space": map[string]interface{}{
			"type":        "boolean",
			"description": "Interpret the color in the artist's red-yellow-blue space",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion
		{
			Name:        "color_convert",
			Description: "Convert a color given as hex, RGB, HSL, or CSS name into every representation: hex, RGB, HSL, RYB, normalized forms, and the exact CSS name when one exists.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorProperty(),
			},
		},
		{
			Name:        "color_nearest_name",
			Description: "Find the CSS color name closest to the given color by perceptual (CIE Lab) distance.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorProperty(),
			},
		},

		// Palette generation
		{
			Name:        "color_harmony",
			Description: "Generate an ordered color palette related to a base color. Harmonies: complementary, analogous, triadic, compound, square, rectangle, monochrome.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProperties(colorProperty(), map[string]interface{}{
					"harmony": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"complementary", "analogous", "triadic", "compound", "square", "rectangle", "monochrome"},
						"description": "Harmony rule to apply",
					},
				}),
				"required": []string{"harmony"},
			},
		},

		// Image analysis
		{
			Name:        "palette_extract",
			Description: "Extract the N most dominant colors from an image file, ordered by pixel share.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of swatches to return (default 5)",
						"default":     5,
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian pre-blur radius to suppress speckle (default 0, disabled)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, format, and file size of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

func mergeProperties(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
