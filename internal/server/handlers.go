package server

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gaze-fov/internal/fov"
	"github.com/ironsheep/gaze-fov/internal/geometry"
	"github.com/ironsheep/gaze-fov/internal/imaging"
	"github.com/ironsheep/gaze-fov/internal/scene"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "fov_classify", "fov_render").
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

	start := time.Now()
	result, err := s.runTool(params.Name, params.Arguments)
	entry := s.log.WithFields(logrus.Fields{
		"tool":    params.Name,
		"elapsed": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	entry.Debug("tool done")

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

// runTool executes a tool and turns a panic into an error so one bad call
// cannot stop the server.
func (s *Server) runTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("tool", name).Errorf("tool panicked: %v", r)
			result, err = nil, fmt.Errorf("tool %s panicked: %v", name, r)
		}
	}()
	return s.executeTool(name, args)
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Classification
	case "fov_classify":
		return s.handleClassify(args)
	case "fov_render":
		return s.handleRender(args)
	case "fov_generate_scene":
		return s.handleGenerateScene(args)

	// Geometry helpers
	case "fov_angle_overlap":
		return s.handleAngleOverlap(args)
	case "fov_boxes_overlap":
		return s.handleBoxesOverlap(args)

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

// === Classification Handlers ===

// sceneArgs selects a scene and optionally overrides the server tunables.
type sceneArgs struct {
	Path           string          `json:"path"`
	Scene          json.RawMessage `json:"scene"`
	FOVDegree      *float64        `json:"fov_degree"`
	ConfThreshold  *float64        `json:"conf_threshold"`
	CountThreshold *int            `json:"count_threshold"`
}

func (a sceneArgs) load() (*scene.Scene, error) {
	switch {
	case len(a.Scene) > 0 && string(a.Scene) != "null":
		return scene.Decode(a.Scene, scene.FormatJSON)
	case a.Path != "":
		return scene.Load(a.Path)
	default:
		return nil, fmt.Errorf("%w: either scene or path is required", fov.ErrInvalidInput)
	}
}

func (s *Server) classifier(a sceneArgs) (*fov.Classifier, error) {
	cfg := s.settings.FOV()
	if a.FOVDegree != nil {
		cfg.FOVDegree = *a.FOVDegree
	}
	if a.ConfThreshold != nil {
		cfg.ConfThreshold = *a.ConfThreshold
	}
	if a.CountThreshold != nil {
		cfg.CountThreshold = *a.CountThreshold
	}
	return fov.New(cfg, fov.WithLogger(s.log))
}

func (s *Server) classify(a sceneArgs) (*ClassifyResult, *scene.Scene, error) {
	sc, err := a.load()
	if err != nil {
		return nil, nil, err
	}
	c, err := s.classifier(a)
	if err != nil {
		return nil, nil, err
	}
	res, err := sc.Classify(c)
	if err != nil {
		return nil, nil, err
	}
	return newClassifyResult(sc, c.Config(), res), sc, nil
}

// ClassifyResult is returned by fov_classify.
type ClassifyResult struct {
	SceneID string      `json:"scene_id,omitempty"`
	Config  fov.Config  `json:"config"`
	Result  *fov.Result `json:"result"`
	Buckets []string    `json:"buckets"`
}

func newClassifyResult(sc *scene.Scene, cfg fov.Config, res *fov.Result) *ClassifyResult {
	buckets := make([]string, 0, len(res.EdgeCounts))
	for _, b := range res.Buckets() {
		buckets = append(buckets, string(b))
	}
	return &ClassifyResult{SceneID: sc.ID, Config: cfg, Result: res, Buckets: buckets}
}

func (s *Server) handleClassify(args json.RawMessage) (interface{}, error) {
	var a sceneArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	out, _, err := s.classify(a)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type renderArgs struct {
	sceneArgs

	ShowLowConfidence bool    `json:"show_low_confidence"`
	WedgeOpacity      float64 `json:"wedge_opacity"`
	GridSpacing       *int    `json:"grid_spacing"`
	GridLabels        bool    `json:"grid_labels"`
	CropToContext     bool    `json:"crop_to_context"`
	Scale             float64 `json:"scale"`
	Background        string  `json:"background"`
}

// RenderResult is returned by fov_render.
type RenderResult struct {
	ClassifyResult
	Image *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.WedgeOpacity < 0 || a.WedgeOpacity > 1 {
		return nil, fmt.Errorf("%w: wedge_opacity %g outside [0,1]", fov.ErrInvalidInput, a.WedgeOpacity)
	}

	classified, sc, err := s.classify(a.sceneArgs)
	if err != nil {
		return nil, err
	}

	opts := s.render
	opts.ShowLowConfidence = a.ShowLowConfidence
	opts.WedgeOpacity = a.WedgeOpacity
	opts.GridLabels = a.GridLabels
	if a.GridSpacing != nil {
		opts.GridSpacing = *a.GridSpacing
	}
	if a.Background != "" {
		if opts.Background, err = s.frames.Load(a.Background); err != nil {
			return nil, err
		}
	}

	img, err := imaging.Render(sc, classified.Result, opts)
	if err != nil {
		return nil, err
	}

	var out image.Image = img
	if a.CropToContext {
		out, err = imaging.CropToBox(img, sc.Context, 0, a.Scale)
	} else if a.Scale != 1.0 {
		out, err = imaging.Crop(img, 0, 0, img.Bounds().Dx(), img.Bounds().Dy(), a.Scale)
	}
	if err != nil {
		return nil, err
	}

	enc, err := imaging.Encode(out)
	if err != nil {
		return nil, err
	}
	return &RenderResult{ClassifyResult: *classified, Image: enc}, nil
}

// minGenerateSize matches the smallest demo canvas the settings allow.
const minGenerateSize = 16

type generateArgs struct {
	ImageSize  int   `json:"image_size"`
	NumObjects *int  `json:"num_objects"`
	Seed       int64 `json:"seed"`
}

func (s *Server) handleGenerateScene(args json.RawMessage) (interface{}, error) {
	var a generateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ImageSize == 0 {
		a.ImageSize = s.settings.ImageSize
	}
	if a.ImageSize < minGenerateSize || a.ImageSize > scene.MaxImageSize {
		return nil, fmt.Errorf("%w: image_size %d outside [%d,%d]", fov.ErrInvalidInput, a.ImageSize, minGenerateSize, scene.MaxImageSize)
	}
	n := s.settings.NumObjects
	if a.NumObjects != nil {
		n = *a.NumObjects
	}
	if n < 0 || n > scene.MaxObjects {
		return nil, fmt.Errorf("%w: num_objects %d outside [0,%d]", fov.ErrInvalidInput, n, scene.MaxObjects)
	}
	if a.Seed == 0 {
		a.Seed = time.Now().UnixNano()
	}
	return scene.NewGenerator(a.Seed).Scene(a.ImageSize, n)
}

// === Geometry Helper Handlers ===

type angleOverlapArgs struct {
	FOVMin  float64 `json:"fov_min"`
	FOVMax  float64 `json:"fov_max"`
	Angle1  float64 `json:"angle1"`
	Angle2  float64 `json:"angle2"`
	Degrees bool    `json:"degrees"`
}

// OverlapResult is returned by the geometry helper tools.
type OverlapResult struct {
	Overlaps bool `json:"overlaps"`
}

func (s *Server) handleAngleOverlap(args json.RawMessage) (interface{}, error) {
	var a angleOverlapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Degrees {
		k := math.Pi / 180
		a.FOVMin, a.FOVMax, a.Angle1, a.Angle2 = a.FOVMin*k, a.FOVMax*k, a.Angle1*k, a.Angle2*k
	}
	for _, v := range []float64{a.FOVMin, a.FOVMax, a.Angle1, a.Angle2} {
		if v < -math.Pi-1e-12 || v > math.Pi+1e-12 {
			return nil, fmt.Errorf("%w: angle %g outside [-π, π]", fov.ErrInvalidInput, v)
		}
	}
	return &OverlapResult{
		Overlaps: geometry.AngleRangeOverlapsFov(a.FOVMin, a.FOVMax, a.Angle1, a.Angle2),
	}, nil
}

type boxesOverlapArgs struct {
	A geometry.BoundingBox `json:"a"`
	B geometry.BoundingBox `json:"b"`
}

func (s *Server) handleBoxesOverlap(args json.RawMessage) (interface{}, error) {
	var a boxesOverlapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &OverlapResult{Overlaps: geometry.BoxesOverlap(a.A, a.B)}, nil
}
