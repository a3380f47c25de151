// assetgen draws the ClearFine logo and exports the 1x/2x/3x PNG
// variants of the app's Logo imageset, plus its Contents.json manifest.
// Usage: go run .
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/clearfine/assetgen/internal/render"
	"github.com/clearfine/assetgen/internal/xcassets"
)

const imagesetDir = "Assets.xcassets/Logo.imageset"

// variants maps each asset scale to its render height and filename.
var variants = [3]struct {
	size int
	name string
}{
	{100, "ClearFineLogo.png"},
	{200, "ClearFineLogo@2x.png"},
	{300, "ClearFineLogo@3x.png"},
}

func main() {
	if err := generate(imagesetDir); err != nil {
		fmt.Fprintln(os.Stderr, "assetgen:", err)
		os.Exit(1)
	}
	fmt.Println("Logo generation complete!")
}

// generate renders every variant into dir and writes the imageset
// manifest alongside them. dir is created if absent; existing files
// are overwritten.
func generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var names [3]string
	for i, v := range variants {
		path := filepath.Join(dir, v.name)
		if err := writePNG(path, v.size); err != nil {
			return err
		}
		names[i] = v.name
		fmt.Printf("Created logo at %s\n", path)
	}

	return xcassets.ImageSet(names).Write(filepath.Join(dir, "Contents.json"))
}

func writePNG(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, render.Logo(size))
}
