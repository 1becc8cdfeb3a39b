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

package monitor

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"strings"
	"time"

	"power-ocr-meter/lcd"
)

// FrameSource supplies one grayscale frame per call. A frame is owned
// by the cycle that acquired it and is not retained across cycles.
type FrameSource interface {
	Frame() (*image.Gray, error)
}

// NewFrameSource selects a source from the configured location: HTTP
// URLs poll a camera endpoint, anything else is read as a still image
// file on every call.
func NewFrameSource(source string, timeout time.Duration) (FrameSource, error) {
	if source == "" {
		return nil, fmt.Errorf("no capture source configured")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTPSource{url: source, client: http.Client{Timeout: timeout}}, nil
	}
	return &FileSource{Path: source}, nil
}

// HTTPSource fetches frames from a camera still-capture endpoint.
type HTTPSource struct {
	url    string
	client http.Client
}

func (s *HTTPSource) Frame() (*image.Gray, error) {
	res, err := s.client.Get(s.url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", s.url, res.Status)
	}
	img, _, err := image.Decode(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", s.url, err)
	}
	return lcd.ToGray(img), nil
}

// FileSource re-reads a still image on every frame request; useful for
// rig tuning and tests.
type FileSource struct {
	Path string
}

func (s *FileSource) Frame() (*image.Gray, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", s.Path, err)
	}
	return lcd.ToGray(img), nil
}
