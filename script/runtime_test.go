package script

import (
	"bytes"
	"strings"
	"testing"
)

func TestRuntimeBasic(t *testing.T) {
	r := NewRuntime()

	result, err := r.Execute("1 + 2")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ToInteger() != 3 {
		t.Errorf("Expected 3, got %v", result.ToInteger())
	}
}

func TestRuntimeConsole(t *testing.T) {
	r := NewRuntime()
	var buf bytes.Buffer
	r.SetOutput(&buf)

	_, err := r.Execute(`console.log("cells", 2, "x", 3)`)
	if err != nil {
		t.Fatalf("console.log failed: %v", err)
	}
	if !strings.Contains(buf.String(), "cells 2 x 3") {
		t.Errorf("Unexpected console output: %q", buf.String())
	}

	_, err = r.Execute(`
		console.warn("warning");
		console.error("error");
		console.info("info");
	`)
	if err != nil {
		t.Fatalf("console methods failed: %v", err)
	}
}

func TestRuntimeSyntaxErrorCollected(t *testing.T) {
	r := NewRuntime()

	if _, err := r.Execute("var = ;"); err == nil {
		t.Fatal("Expected a syntax error")
	}
	if len(r.Errors()) != 1 {
		t.Errorf("Expected 1 collected error, got %d", len(r.Errors()))
	}
}

func TestGridMeasureFromScript(t *testing.T) {
	r := NewRuntime()

	_, err := r.Execute(`
		var g = grid();
		for (var i = 0; i < 5; i++) {
			g.add(100, 50);
		}
		var size = g.measure(250, Infinity);
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	width, err := r.Execute("size.width")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if width.ToFloat() != 200 {
		t.Errorf("size.width wrong: got %v, expected 200", width.ToFloat())
	}

	height, err := r.Execute("size.height")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if height.ToFloat() != 150 {
		t.Errorf("size.height wrong: got %v, expected 150", height.ToFloat())
	}
}

func TestGridMeasureUnconstrainedFromScript(t *testing.T) {
	r := NewRuntime()

	result, err := r.Execute(`
		var g = grid();
		g.add(100, 50).add(100, 50).add(100, 50);
		g.measure(Infinity, Infinity).width;
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// Unbounded width puts all three children on one row.
	if result.ToFloat() != 300 {
		t.Errorf("Width wrong: got %v, expected 300", result.ToFloat())
	}
}

func TestGridCapsFromScript(t *testing.T) {
	r := NewRuntime()

	result, err := r.Execute(`
		var g = grid(Infinity, 1);
		for (var i = 0; i < 5; i++) {
			g.add(100, 50);
		}
		g.measure(250, Infinity).height;
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// One column stacks all five children.
	if result.ToFloat() != 250 {
		t.Errorf("Height wrong: got %v, expected 250", result.ToFloat())
	}
}

func TestGridArrangeFromScript(t *testing.T) {
	r := NewRuntime()

	_, err := r.Execute(`
		var g = grid();
		for (var i = 0; i < 5; i++) {
			g.add(100, 50);
		}
		var cells = g.arrange(0, 0, 250, 400);
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	count, err := r.Execute("cells.length")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if count.ToInteger() != 5 {
		t.Errorf("Expected 5 placements, got %v", count.ToInteger())
	}

	second, err := r.Execute("cells[1].x + ',' + cells[1].y + ',' + cells[1].width")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if second.String() != "125,0,125" {
		t.Errorf("Second placement wrong: got %q, expected %q", second.String(), "125,0,125")
	}
}

func TestGridSettersFromScript(t *testing.T) {
	r := NewRuntime()

	result, err := r.Execute(`
		var g = grid();
		g.add(100, 50).add(100, 50).add(100, 50).add(100, 50);
		g.setMaxColumns(2);
		g.measure(Infinity, Infinity).width;
	`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.ToFloat() != 200 {
		t.Errorf("Width wrong: got %v, expected 200", result.ToFloat())
	}
}
