package main

import (
	"fmt"
	"os"

	"github.com/chrisuehlinger/uniformgrid/layout"
	"github.com/chrisuehlinger/uniformgrid/markup"
	"github.com/chrisuehlinger/uniformgrid/script"
	"github.com/chrisuehlinger/uniformgrid/ui"
)

// sampleDocument is used when no panel file is given.
const sampleDocument = `<uniformgrid maxcolumns="3">
  <item width="100" height="60"/>
  <item width="100" height="60"/>
  <item width="100" height="60" hidden/>
  <item width="100" height="60"/>
  <item width="100" height="60"/>
</uniformgrid>`

func main() {
	fmt.Println("uniformgrid - uniform-cell grid layout")

	args := os.Args[1:]
	switch {
	case len(args) > 0 && args[0] == "--headless":
		if err := headless(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case len(args) > 1 && args[0] == "run":
		r := script.NewRuntime()
		if err := r.RunFile(args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		panel, err := loadPanel(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		ui.Preview(panel)
	}
}

// loadPanel reads the panel document named by the first argument, or
// falls back to the built-in sample.
func loadPanel(args []string) (*markup.Panel, error) {
	if len(args) == 0 {
		return markup.Parse(sampleDocument)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markup.ParseReader(f)
}

// headless runs one layout pass and prints the result instead of
// opening a window.
func headless(args []string) error {
	fmt.Println("Running in headless mode...")

	panel, err := loadPanel(args)
	if err != nil {
		return err
	}

	const width, height = 640.0, 480.0
	elements := panel.Elements()

	measured := panel.Grid.Measure(elements, width, layout.Unconstrained())
	cell := panel.Grid.Arrange(elements, layout.Rect{Width: width, Height: height})

	fmt.Printf("children: %d\n", len(panel.Children))
	fmt.Printf("measured: %.1f x %.1f (constraint %.0f)\n", measured.Width, measured.Height, width)
	fmt.Printf("cell:     %.1f x %.1f\n", cell.Width, cell.Height)
	for i, child := range panel.Children {
		bounds, placed := child.Placement()
		if !placed {
			fmt.Printf("  [%d] not placed\n", i)
			continue
		}
		state := "visible"
		if child.Hidden {
			state = "hidden"
		}
		fmt.Printf("  [%d] %s at (%.1f, %.1f) %.1f x %.1f\n",
			i, state, bounds.X, bounds.Y, bounds.Width, bounds.Height)
	}
	return nil
}
