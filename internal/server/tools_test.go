package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"fov_classify",
		"fov_render",
		"fov_generate_scene",
		"fov_angle_overlap",
		"fov_boxes_overlap",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Expected %d tools, got %d", len(expectedTools), len(tools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || len(props) == 0 {
				t.Error("InputSchema has no properties")
			}

			// Every required field must be a declared property.
			if required, ok := tool.InputSchema["required"].([]string); ok {
				for _, r := range required {
					if _, ok := props[r]; !ok {
						t.Errorf("required field %s is not a property", r)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_RenderExtendsClassify(t *testing.T) {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	classify := toolMap["fov_classify"].InputSchema["properties"].(map[string]interface{})
	render := toolMap["fov_render"].InputSchema["properties"].(map[string]interface{})

	for name := range classify {
		if _, ok := render[name]; !ok {
			t.Errorf("fov_render is missing classify input %s", name)
		}
	}
	for _, name := range []string{"show_low_confidence", "wedge_opacity", "grid_spacing", "crop_to_context"} {
		if _, ok := classify[name]; ok {
			t.Errorf("fov_classify should not accept render option %s", name)
		}
		if _, ok := render[name]; !ok {
			t.Errorf("fov_render is missing %s", name)
		}
	}
}
