package shaders

import (
	"strings"
	"testing"
)

func TestSourcesDeclareFrameBlock(t *testing.T) {
	sources := map[string]string{
		"tube.vert":  TubeVertexShader,
		"wire.vert":  WireVertexShader,
		"fiber.frag": FiberFragmentShader,
	}

	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing #version 410 core", name)
		}
		if !strings.Contains(src, "uniform "+FrameBlock+" {") {
			t.Errorf("%s: missing %s block", name, FrameBlock)
		}
	}
}
