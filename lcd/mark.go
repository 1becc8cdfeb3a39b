// Copyright 2025 The power-ocr-meter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lcd

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/fogleman/gg"
)

// Marked pairs a sampling region with its evaluated state for overlay
// rendering.
type Marked struct {
	R  Rect
	On bool
}

// Annotate draws the sampling regions and a timestamp over a frame,
// returning a new image. Lit regions get a filled marker in their
// bottom right corner. Used for rig alignment previews.
func Annotate(frame image.Image, regions []Marked, stamp string) image.Image {
	c := gg.NewContextForImage(frame)
	for _, m := range regions {
		c.SetRGB(0, 0, 1)
		c.DrawRectangle(float64(m.R.X1), float64(m.R.Y1), float64(m.R.Width()), float64(m.R.Height()))
		c.Stroke()
		if m.On {
			c.SetRGB(1, 0, 0)
			c.DrawRectangle(float64(m.R.X2-5), float64(m.R.Y2-5), 5, 5)
			c.Fill()
		}
	}
	if stamp != "" {
		c.SetRGB(0, 0.8, 0)
		c.DrawString(stamp, 10, 30)
	}
	return c.Image()
}

// SaveImage writes the image, using the suffix to select the format.
func SaveImage(name string, img image.Image) error {
	of, err := os.Create(name)
	if err != nil {
		return err
	}
	defer of.Close()
	if strings.HasSuffix(name, "png") {
		return png.Encode(of, img)
	} else if strings.HasSuffix(name, "jpg") {
		return jpeg.Encode(of, img, nil)
	}
	return fmt.Errorf("%s: unknown image format", name)
}
