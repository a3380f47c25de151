package main

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/clearfine/assetgen/internal/xcassets"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Assets.xcassets", "Logo.imageset")
	if err := generate(dir); err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := map[string][2]int{
		"ClearFineLogo.png":    {150, 100},
		"ClearFineLogo@2x.png": {300, 200},
		"ClearFineLogo@3x.png": {450, 300},
	}
	for name, dims := range want {
		t.Run(name, func(t *testing.T) {
			f, err := os.Open(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("missing output: %v", err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("not a valid PNG: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != dims[0] || b.Dy() != dims[1] {
				t.Errorf("dimensions = %dx%d, want %dx%d", b.Dx(), b.Dy(), dims[0], dims[1])
			}
		})
	}

	data, err := os.ReadFile(filepath.Join(dir, "Contents.json"))
	if err != nil {
		t.Fatalf("missing manifest: %v", err)
	}
	var contents xcassets.Contents
	if err := json.Unmarshal(data, &contents); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(contents.Images) != 3 {
		t.Errorf("manifest lists %d images, want 3", len(contents.Images))
	}
}

func TestGenerateIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Assets.xcassets", "Logo.imageset")
	if err := generate(dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := generate(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}

	for _, v := range variants {
		f, err := os.Open(filepath.Join(dir, v.name))
		if err != nil {
			t.Fatalf("missing output after rerun: %v", err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Errorf("%s not a valid PNG after rerun: %v", v.name, err)
		}
		f.Close()
	}
}
