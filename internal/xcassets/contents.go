// Package xcassets writes Xcode asset-catalog manifests.
package xcassets

import (
	"encoding/json"
	"os"
)

// Contents models an imageset Contents.json document.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// ImageSet builds the manifest for a universal image set; filenames are
// given in 1x, 2x, 3x order.
func ImageSet(filenames [3]string) Contents {
	scales := [3]string{"1x", "2x", "3x"}
	c := Contents{Info: Info{Author: "xcode", Version: 1}}
	for i, name := range filenames {
		c.Images = append(c.Images, Image{Filename: name, Idiom: "universal", Scale: scales[i]})
	}
	return c
}

// Write marshals the manifest to path, overwriting any existing file.
func (c Contents) Write(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
