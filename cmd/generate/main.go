package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"designcollective.dev/internal/components"
	"designcollective.dev/internal/config"
	"designcollective.dev/internal/models"
	"designcollective.dev/internal/view"
	"designcollective.dev/static"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := export(outputDir, cfg.Content, view.SystemClock); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}

// export writes index.html, content.json and the static assets to dir
func export(dir string, content *models.Content, clock view.Clock) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var page bytes.Buffer
	if err := components.Page(content, view.NewMenu(view.MenuClosed), clock, "static").Render(&page); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), page.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}
	fmt.Printf("  Created index.html (%d bytes)\n", page.Len())

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling content: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "content.json"), data, 0644); err != nil {
		return fmt.Errorf("writing content.json: %w", err)
	}
	fmt.Println("  Created content.json")

	return fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", path)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		body, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, body, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		fmt.Printf("  Created static/%s\n", path)
		return nil
	})
}
