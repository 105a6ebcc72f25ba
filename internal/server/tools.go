package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var colorProperty = map[string]interface{}{
	"type":        "string",
	"description": "Color text, e.g. \"#aabbcc\", \"#abc\", \"rgb(10, 20, 30)\", \"rgba(10, 20, 30, 0.5)\", \"hsl(210, 50%, 8%)\" or \"hsla(210, 50%, 8%, 0.5)\"",
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to a PNG, JPEG or GIF image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversion filters
		{
			Name:        "color_to_rgb",
			Description: "Convert a hex or hsl color to rgb notation. Returns has_value=false when the input is not a hex or hsl color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_to_hex",
			Description: "Convert an rgb or hsl color to 6-digit lowercase hex. Alpha is dropped. Returns has_value=false when the input is not an rgb or hsl color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_to_hsl",
			Description: "Convert a hex or rgb color to hsl notation. Returns has_value=false when the input is not a hex or rgb color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_extract",
			Description: "Read one channel of a color in any notation. red, green and blue are 0-255; hue is 0-360; saturation and lightness are whole percents; alpha is 0-1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"alpha", "red", "green", "blue", "hue", "saturation", "lightness"},
						"description": "Channel to read",
					},
				},
				"required": []string{"color", "channel"},
			},
		},
		{
			Name:        "color_parse",
			Description: "Recognize a color in any notation and return it in all three canonical notations together with every channel value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
				},
				"required": []string{"color"},
			},
		},

		// Image operations
		{
			Name:        "color_sample",
			Description: "Get the color of a single pixel as hex, rgb and hsl text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Extract the most common colors of an image or region. Similar colors are grouped by quantizing each channel to multiples of 16.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return (default from server configuration, normally 5)",
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region to analyze; (x1,y1) inclusive, (x2,y2) exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a solid PNG swatch of a color in any notation and return it base64-encoded. Alpha is kept in the PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels, 1-1024 (default from server configuration, normally 64)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels, 1-1024 (default from server configuration, normally 64)",
					},
					"label": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the hex text on the swatch",
						"default":     false,
					},
				},
				"required": []string{"color"},
			},
		},
	}
}
