package sdk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// ErrRequestFailed wraps every web API failure reported by the server.
var ErrRequestFailed = errors.New("web request failed")

// MaxFileUpload is the maximum upload size in bytes for attachments that are
// not resized.
const MaxFileUpload = 2000000

// Uploaded images are downscaled client-side to fit this bound.
const maxImageSize = 300

func (c *SDKConnection) post(ctx context.Context, url, xml string) (*dto.Element, error) {
	if c.Debug {
		log.Printf("POST: %s", url)
		log.Printf("XML: %s", xml)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(xml))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/xml")
	return c.do(request)
}

// postFile uploads a multipart form with the file content in the "file" part
// and the request XML in the "xml" field.
func (c *SDKConnection) postFile(ctx context.Context, url, filename string, content []byte, xml string) (*dto.Element, error) {
	if c.Debug {
		log.Printf("POST FILE: %s", url)
		log.Printf("XML: %s", xml)
	}
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := form.WriteField("xml", xml); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(request)
}

// postImage uploads an image attachment, downscaled client-side first.
func (c *SDKConnection) postImage(ctx context.Context, url, filename string, content []byte, xml string) (*dto.Element, error) {
	scaled, err := ScaleImage(content)
	if err != nil {
		return nil, fmt.Errorf("scale image: %w", err)
	}
	return c.postFile(ctx, url, filename, scaled, xml)
}

// do executes the request and returns the parsed response root element.
// Success is 200 or 204; an empty success body returns a nil element. On
// failure the Error callback is notified with the server's message (the
// status text when the body is an HTML error page, the raw body otherwise)
// and the same message is returned as an error.
func (c *SDKConnection) do(request *http.Request) (*dto.Element, error) {
	response, err := c.client.Do(request)
	if err != nil {
		return nil, c.fail(err.Error())
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, c.fail(err.Error())
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNoContent {
		message := string(body)
		if strings.Contains(message, "<html>") {
			message = response.Status
		}
		return nil, c.fail(message)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return dto.ParseElement(body)
}

func (c *SDKConnection) fail(message string) error {
	if c.Error != nil {
		c.Error(message)
	}
	return fmt.Errorf("%w: %s", ErrRequestFailed, message)
}

// ScaleImage downscales a raster image (jpeg, png, or gif) to fit within
// 300x300 preserving its aspect ratio, never upscaling, composites it onto a
// white background, and re-encodes it as JPEG.
func ScaleImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	img = resize.Thumbnail(maxImageSize, maxImageSize, img, resize.Lanczos3)
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)

	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, canvas, nil); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
