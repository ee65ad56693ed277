package server

import "github.com/ironsheep/gaze-fov/internal/scene"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func numberProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": description,
	}
}

func boxSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"xmin": numberProp("Left edge"),
			"ymin": numberProp("Top edge"),
			"xmax": numberProp("Right edge"),
			"ymax": numberProp("Bottom edge"),
			"conf": numberProp("Detection confidence in [0,1]"),
		},
		"required": []string{"xmin", "ymin", "xmax", "ymax"},
	}
}

func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x": numberProp("X coordinate"),
			"y": numberProp("Y coordinate"),
		},
		"required": []string{"x", "y"},
	}
}

// sceneProps are the inputs shared by fov_classify and fov_render.
func sceneProps() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a scene file (.yaml, .yml or .json). Used when scene is omitted.",
		},
		"scene": map[string]interface{}{
			"type":        "object",
			"description": "Inline scene",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Optional scene UUID",
				},
				"image_size": map[string]interface{}{
					"type":        "integer",
					"description": "Side of the square canvas in pixels, at most 8192",
					"minimum":     1,
					"maximum":     scene.MaxImageSize,
				},
				"context": boxSchema("Driver box; objects outside it are irrelevant"),
				"gaze": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"start": pointSchema("Gaze origin"),
						"end":   pointSchema("Point the driver looks toward"),
					},
					"required": []string{"start", "end"},
				},
				"objects": map[string]interface{}{
					"type":  "array",
					"items": boxSchema("Candidate object"),
				},
			},
			"required": []string{"image_size", "context", "gaze", "objects"},
		},
		"fov_degree": map[string]interface{}{
			"type":        "number",
			"description": "Full FOV opening angle in degrees, [0, 90). Defaults to the server setting.",
		},
		"conf_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Minimum confidence for an object to be tested, (0, 1). Defaults to the server setting.",
		},
		"count_threshold": map[string]interface{}{
			"type":        "integer",
			"description": "Box edges that must reach the wedge, [1, 4]. Defaults to the server setting.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	renderProps := sceneProps()
	renderProps["show_low_confidence"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Outline low-confidence objects in grey. Default false",
	}
	renderProps["wedge_opacity"] = map[string]interface{}{
		"type":        "number",
		"description": "Fill the FOV wedge with this opacity in [0,1]. Default 0 (no fill)",
	}
	renderProps["grid_spacing"] = map[string]interface{}{
		"type":        "integer",
		"description": "Draw a coordinate grid every N pixels. Default is the server setting, 0 disables",
	}
	renderProps["grid_labels"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Label grid crossings with their coordinates. Default false",
	}
	renderProps["crop_to_context"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Return only the driver box region. Default false",
	}
	renderProps["scale"] = map[string]interface{}{
		"type":        "number",
		"description": "Optional scale factor applied to the output. Default 1.0",
		"default":     1.0,
	}
	renderProps["background"] = map[string]interface{}{
		"type":        "string",
		"description": "Path to a PNG, JPEG or GIF camera frame to draw the overlay on. Scaled and centre-cropped to the scene size",
	}

	return []Tool{
		// Classification
		{
			Name:        "fov_classify",
			Description: "Classify every object of a scene as intersecting (inside the driver's field of view), outside_context, unseen or low_confidence, and report whether the driver is DISTRACTED or FOCUS!.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sceneProps(),
			},
		},
		{
			Name:        "fov_render",
			Description: "Classify a scene and draw it: driver box, gaze and FOV arrows, objects coloured by bucket, and the label. Returns a base64-encoded PNG with the classification.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": renderProps,
			},
		},
		{
			Name:        "fov_generate_scene",
			Description: "Generate a random scene with a driver box, a gaze inside it and random objects.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of the square canvas in pixels, 16 to 8192. Defaults to the server setting",
						"minimum":     minGenerateSize,
						"maximum":     scene.MaxImageSize,
					},
					"num_objects": map[string]interface{}{
						"type":        "integer",
						"description": "Number of objects, 0 to 1000. Defaults to the server setting",
						"minimum":     0,
						"maximum":     scene.MaxObjects,
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Random seed. Default 0 picks a time-based seed",
					},
				},
			},
		},

		// Geometry helpers
		{
			Name:        "fov_angle_overlap",
			Description: "Test whether the arc between angle1 and angle2 overlaps the FOV range [fov_min, fov_max]. Arcs are the shorter way round and may cross ±180°. Bounds are inclusive.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"fov_min": numberProp("FOV range start"),
					"fov_max": numberProp("FOV range end"),
					"angle1":  numberProp("First edge angle"),
					"angle2":  numberProp("Second edge angle"),
					"degrees": map[string]interface{}{
						"type":        "boolean",
						"description": "Angles are in degrees instead of radians. Default false",
					},
				},
				"required": []string{"fov_min", "fov_max", "angle1", "angle2"},
			},
		},
		{
			Name:        "fov_boxes_overlap",
			Description: "Test whether two axis-aligned boxes overlap or one contains the other. Touching edges overlap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": boxSchema("First box"),
					"b": boxSchema("Second box"),
				},
				"required": []string{"a", "b"},
			},
		},
	}
}

// handleToolsList returns every tool definition
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
