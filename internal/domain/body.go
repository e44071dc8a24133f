package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ImageTagPrefix starts every embedded image line of an issue body.
const ImageTagPrefix = `<img src="data:image/jpeg;base64,`

// EncodeBody appends images to details as one <img> tag per line.
// Details are not escaped: a line of user text that starts with ImageTagPrefix
// decodes as an image.
func EncodeBody(details string, images []string) string {
	if len(images) == 0 {
		return details
	}
	var b strings.Builder
	b.WriteString(details)
	for i, img := range images {
		b.WriteString("\n")
		b.WriteString(ImageTag(img, i))
	}
	return b.String()
}

// ImageTag renders a single embedded image line.
func ImageTag(data string, index int) string {
	return fmt.Sprintf(`%s%s" alt="image_%d"/>`, ImageTagPrefix, data, index)
}

// DecodeBody extracts embedded images from body and returns them together with
// the remaining text. It never fails; a tag without a closing quote yields the
// rest of the line minus its last character as payload.
func DecodeBody(body string) ([]string, string) {
	images := []string{}
	if body == "" {
		return images, ""
	}
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if data, ok := imagePayload(line); ok {
			images = append(images, data)
			continue
		}
		kept = append(kept, line)
	}
	return images, strings.Join(kept, "\n")
}

// imagePayload returns the base64 payload of an image line.
func imagePayload(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, ImageTagPrefix)
	if !ok {
		return "", false
	}
	if end := strings.IndexByte(rest, '"'); end >= 0 {
		return rest[:end], true
	}
	if rest == "" {
		return "", true
	}
	return rest[:len(rest)-1], true
}

// BodyEnvelope is the structured JSON body written by older clients.
// Images hold full <img> tags rather than bare payloads; entries in any other
// shape are kept as best-effort payloads.
type BodyEnvelope struct {
	Username string   `json:"username"`
	Version  string   `json:"version"`
	Content  string   `json:"content"`
	Images   []string `json:"images"`
}

// DecodedBody is the result of decoding an issue body in either format.
type DecodedBody struct {
	Username string
	Version  string
	Content  string
	Images   []string
}

// DecodeIssueBody decodes body as a JSON envelope first and falls back to the
// line format for anything else, including issues filed by other tools.
func DecodeIssueBody(body string) DecodedBody {
	if env, ok := parseEnvelope(body); ok {
		images := make([]string, 0, len(env.Images))
		for _, tag := range env.Images {
			if data := envelopeImage(tag); data != "" {
				images = append(images, data)
			}
		}
		return DecodedBody{
			Username: env.Username,
			Version:  env.Version,
			Content:  env.Content,
			Images:   images,
		}
	}
	images, content := DecodeBody(body)
	return DecodedBody{Content: content, Images: images}
}

// envelopeImage extracts the payload of one envelope image entry. Besides full
// tags it accepts data URIs of any image type and bare base64 payloads.
func envelopeImage(tag string) string {
	tag = strings.TrimSpace(tag)
	if data, ok := imagePayload(tag); ok {
		return data
	}
	if _, rest, ok := strings.Cut(tag, ";base64,"); ok {
		tag = rest
	}
	if end := strings.IndexByte(tag, '"'); end >= 0 {
		tag = tag[:end]
	}
	return tag
}

func parseEnvelope(body string) (BodyEnvelope, bool) {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, "{") {
		return BodyEnvelope{}, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return BodyEnvelope{}, false
	}
	// All four fields are required, as in the writer of this format.
	for _, k := range []string{"username", "version", "content", "images"} {
		if _, ok := raw[k]; !ok {
			return BodyEnvelope{}, false
		}
	}
	var env BodyEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return BodyEnvelope{}, false
	}
	return env, true
}
