package esaj

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

const snapshotMaxWidth = 1024

// Snapshot captures the current page as a downscaled JPEG. Used to diagnose
// case pages that defeated every parser.
func (s *Session) Snapshot() ([]byte, error) {
	raw, err := s.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	if img.Bounds().Dx() > snapshotMaxWidth {
		img = imaging.Resize(img, snapshotMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}
