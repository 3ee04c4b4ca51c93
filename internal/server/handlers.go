package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/seam-carve-mcp/internal/carve"
	"github.com/ironsheep/seam-carve-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "carve_image").
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
	case "image_info":
		return s.handleImageInfo(args)
	case "carve_image":
		return s.handleCarveImage(args)
	case "carve_step":
		return s.handleCarveStep(args)
	case "energy_map":
		return s.handleEnergyMap(args)
	case "seam_preview":
		return s.handleSeamPreview(args)
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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// blurOrDefault maps the JSON zero value to the default radius. Callers pass
// a negative radius to disable the pre-blur entirely.
func blurOrDefault(radius float64) float64 {
	if radius == 0 {
		return imaging.DefaultBlurRadius
	}
	return radius
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.LoadImageInfo(a.Path)
}

type carveImageArgs struct {
	Path        string  `json:"path"`
	Reduction   float64 `json:"reduction"`
	BlurRadius  float64 `json:"blur_radius"`
	SavePath    string  `json:"save_path"`
	ReturnImage bool    `json:"return_image"`
}

func (s *Server) handleCarveImage(args json.RawMessage) (interface{}, error) {
	var a carveImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}

	carver := &carve.Carver{Gradient: imaging.SobelGradient(blurOrDefault(a.BlurRadius))}
	out, err := carver.Carve(img, a.Reduction)
	if err != nil {
		return nil, err
	}

	result := &imaging.CarveResult{
		OriginalWidth:  img.Width,
		OriginalHeight: img.Height,
		Width:          out.Width,
		Height:         out.Height,
		SeamsRemoved:   img.Width - out.Width,
	}
	if err := s.finishCarve(out, a.SavePath, a.ReturnImage, result); err != nil {
		return nil, err
	}
	return result, nil
}

// finishCarve handles the shared save/inline-return tail of the carve tools.
func (s *Server) finishCarve(out *carve.Image, savePath string, returnImage bool, result *imaging.CarveResult) error {
	if savePath != "" {
		if err := imaging.SaveImage(out.ToImage(), savePath); err != nil {
			return err
		}
		result.SavedPath = savePath
	}
	if returnImage {
		preview, err := imaging.EncodePNG(out.ToImage())
		if err != nil {
			return err
		}
		result.ImageBase64 = preview
		result.MimeType = "image/png"
	}
	return nil
}

type carveStepArgs struct {
	Path        string  `json:"path"`
	BlurRadius  float64 `json:"blur_radius"`
	SavePath    string  `json:"save_path"`
	ReturnImage bool    `json:"return_image"`
}

func (s *Server) handleCarveStep(args json.RawMessage) (interface{}, error) {
	var a carveStepArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}

	seam, energy, err := s.nextSeam(img, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	out, err := carve.RemoveSeam(img, seam)
	if err != nil {
		return nil, err
	}

	result := &imaging.StepResult{
		Width:      out.Width,
		Height:     out.Height,
		Seam:       seam,
		SeamEnergy: seam.TotalEnergy(energy),
	}
	if a.SavePath != "" {
		if err := imaging.SaveImage(out.ToImage(), a.SavePath); err != nil {
			return nil, err
		}
		result.SavedPath = a.SavePath
	}
	if a.ReturnImage {
		encoded, err := imaging.EncodePNG(out.ToImage())
		if err != nil {
			return nil, err
		}
		result.ImageBase64 = encoded
		result.MimeType = "image/png"
	}
	return result, nil
}

type energyMapArgs struct {
	Path       string  `json:"path"`
	BlurRadius float64 `json:"blur_radius"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleEnergyMap(args json.RawMessage) (interface{}, error) {
	var a energyMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}

	img, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	energy, err := s.energyGrid(img, a.BlurRadius)
	if err != nil {
		return nil, err
	}
	return imaging.EnergyHeatmap(energy, a.Scale)
}

type seamPreviewArgs struct {
	Path       string  `json:"path"`
	BlurRadius float64 `json:"blur_radius"`
	SeamColor  string  `json:"seam_color"`
	Scale      float64 `json:"scale"`
}

func (s *Server) handleSeamPreview(args json.RawMessage) (interface{}, error) {
	var a seamPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.SeamColor == "" {
		a.SeamColor = "#FF0000"
	}

	img, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	seam, energy, err := s.nextSeam(img, a.BlurRadius)
	if err != nil {
		return nil, err
	}

	annotation := fmt.Sprintf("seam energy %d", seam.TotalEnergy(energy))
	return imaging.SeamOverlay(img, seam, a.SeamColor, annotation, a.Scale)
}

// energyGrid runs the gradient filter and energy mapper for an image.
func (s *Server) energyGrid(img *carve.Image, blurRadius float64) ([][]int, error) {
	gradient, err := imaging.SobelGradient(blurOrDefault(blurRadius))(img)
	if err != nil {
		return nil, err
	}
	return carve.EnergyMap(gradient, img.Width, img.Height)
}

// nextSeam computes the energy grid and the seam the next step would remove.
func (s *Server) nextSeam(img *carve.Image, blurRadius float64) (carve.Seam, [][]int, error) {
	if img.Width <= 1 || img.Height <= 1 {
		return nil, nil, fmt.Errorf("%w: %dx%d", carve.ErrDegenerateImage, img.Width, img.Height)
	}
	energy, err := s.energyGrid(img, blurRadius)
	if err != nil {
		return nil, nil, err
	}
	seam, err := carve.FindSeam(energy)
	if err != nil {
		return nil, nil, err
	}
	return seam, energy, nil
}
