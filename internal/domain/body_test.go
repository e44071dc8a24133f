package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBody_NoImages(t *testing.T) {
	for _, text := range []string{"", "hello", "line1\nline2", "\n\ntrailing\n"} {
		assert.Equal(t, text, EncodeBody(text, nil))
		assert.Equal(t, text, EncodeBody(text, []string{}))
	}
}

func TestEncodeBody_Format(t *testing.T) {
	got := EncodeBody("details", []string{"AAA", "BBB"})

	want := "details\n" +
		`<img src="data:image/jpeg;base64,AAA" alt="image_0"/>` + "\n" +
		`<img src="data:image/jpeg;base64,BBB" alt="image_1"/>`
	assert.Equal(t, want, got)
}

func TestDecodeBody_Empty(t *testing.T) {
	images, rest := DecodeBody("")
	assert.Empty(t, images)
	assert.NotNil(t, images)
	assert.Equal(t, "", rest)
}

func TestDecodeBody_NoImageLines(t *testing.T) {
	images, rest := DecodeBody("line1\nline2")
	assert.Empty(t, images)
	assert.Equal(t, "line1\nline2", rest)
}

func TestDecodeBody_LeadingImage(t *testing.T) {
	images, rest := DecodeBody(`<img src="data:image/jpeg;base64,ABC123" alt="image_0"/>` + "\nhello")
	assert.Equal(t, []string{"ABC123"}, images)
	assert.Equal(t, "hello", rest)
}

func TestDecodeBody_KeepsBlankLinesAndOrder(t *testing.T) {
	body := "first\n\n" + ImageTag("X1", 0) + "\nsecond\n" + ImageTag("X2", 1) + "\n\nthird"

	images, rest := DecodeBody(body)

	assert.Equal(t, []string{"X1", "X2"}, images)
	assert.Equal(t, "first\n\nsecond\n\nthird", rest)
}

func TestDecodeBody_IndentedTagIsText(t *testing.T) {
	body := " " + ImageTag("X1", 0)
	images, rest := DecodeBody(body)
	assert.Empty(t, images)
	assert.Equal(t, body, rest)
}

func TestDecodeBody_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing closing quote", ImageTagPrefix + "ABCDEF", "ABCDE"},
		{"prefix only", ImageTagPrefix, ""},
		{"immediate quote", ImageTagPrefix + `"/>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var images []string
			var rest string
			require.NotPanics(t, func() {
				images, rest = DecodeBody(tt.body)
			})
			assert.Equal(t, []string{tt.want}, images)
			assert.Equal(t, "", rest)
		})
	}
}

func TestDecodeBody_NeverPanics(t *testing.T) {
	inputs := []string{
		"\n", "\n\n\n", `"`, "<img", ImageTagPrefix + "\n" + ImageTagPrefix,
		"{not json", `{"content": 1}`, strings.Repeat("x", 10000), "\r\n\r\n",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { DecodeBody(in) })
		assert.NotPanics(t, func() { DecodeIssueBody(in) })
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	texts := []string{"", "hello", "multi\nline\n\nwith blanks", "ends with newline\n"}
	for _, text := range texts {
		for n := 0; n <= MaxImages; n++ {
			images := make([]string, n)
			for i := range images {
				images[i] = fmt.Sprintf("aW1hZ2Ut%d==", i)
			}
			t.Run(fmt.Sprintf("%q/%d", text, n), func(t *testing.T) {
				gotImages, gotText := DecodeBody(EncodeBody(text, images))
				assert.Equal(t, images, gotImages)
				assert.Equal(t, text, gotText)
			})
		}
	}
}

func TestDecodeIssueBody_Envelope(t *testing.T) {
	body := `{"username":"alice","version":"v1.2.0","content":"it broke",` +
		`"images":["` + strings.ReplaceAll(ImageTag("QUJD", 0), `"`, `\"`) + `"]}`

	got := DecodeIssueBody(body)

	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "v1.2.0", got.Version)
	assert.Equal(t, "it broke", got.Content)
	assert.Equal(t, []string{"QUJD"}, got.Images)
}

func TestDecodeIssueBody_EnvelopeKeepsEveryImageEntry(t *testing.T) {
	// Setup
	pngTag := `<img src=\"data:image/png;base64,UE5H\" alt=\"image_1\"/>`
	body := `{"username":"bob","version":"v1.0.0","content":"c",` +
		`"images":["` + strings.ReplaceAll(ImageTag("QUJD", 0), `"`, `\"`) + `","` + pngTag + `","REVG","  "]}`

	// Execute
	got := DecodeIssueBody(body)

	// Assert
	assert.Equal(t, []string{"QUJD", "UE5H", "REVG"}, got.Images)
	assert.Equal(t, "c", got.Content)
}

func TestDecodeIssueBody_FallsBackToLineFormat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantText   string
		wantImages []string
	}{
		{"plain text", "some text", "some text", []string{}},
		{"json missing fields", `{"content":"x"}`, `{"content":"x"}`, []string{}},
		{"broken json", `{"username":`, `{"username":`, []string{}},
		{"line format", "hi\n" + ImageTag("Wg==", 0), "hi", []string{"Wg=="}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeIssueBody(tt.body)
			assert.Equal(t, tt.wantText, got.Content)
			assert.Equal(t, tt.wantImages, got.Images)
			assert.Empty(t, got.Username)
			assert.Empty(t, got.Version)
		})
	}
}
