package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, and file size.",
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
		{
			Name: "carve_image",
			Description: "Narrow an image by content-aware seam carving: repeatedly remove the " +
				"lowest-energy vertical pixel path until the requested fraction of the width is gone. " +
				"Height never changes. Preserves visually significant structure better than scaling or cropping.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"reduction": map[string]interface{}{
						"type":        "number",
						"description": "Fraction of the width to remove (0-1). Values >= 1 are clamped so at least one pixel column remains.",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian blur radius applied before edge detection (default 1.0; negative disables blur)",
						"default":     1.0,
					},
					"save_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the carved image (format chosen by extension)",
					},
					"return_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to include the carved image as base64 PNG in the result",
						"default":     false,
					},
				},
				"required": []string{"path", "reduction"},
			},
		},
		{
			Name: "carve_step",
			Description: "Remove exactly one seam from an image and return the seam's coordinates. " +
				"Use repeatedly with save_path for step-wise carving with intermediate results.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian blur radius applied before edge detection (default 1.0; negative disables blur)",
						"default":     1.0,
					},
					"save_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to save the narrowed image",
					},
					"return_image": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to include the narrowed image as base64 PNG in the result",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "energy_map",
			Description: "Render the image's current energy grid as a false-color heatmap " +
				"(blue = cheap to remove, red = expensive). Useful for understanding what carving will preserve.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian blur radius applied before edge detection (default 1.0; negative disables blur)",
						"default":     1.0,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the preview (e.g. 0.5 to halve). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "seam_preview",
			Description: "Return the image with the next seam to be removed drawn on top of it. " +
				"Nothing is removed; this previews what carve_step would take out.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Gaussian blur radius applied before edge detection (default 1.0; negative disables blur)",
						"default":     1.0,
					},
					"seam_color": map[string]interface{}{
						"type":        "string",
						"description": "Seam highlight color as hex (default #FF0000)",
						"default":     "#FF0000",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the preview. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
