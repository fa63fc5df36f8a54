// Package generate drives the AI content pipeline: topic discovery,
// outline drafting, full-article drafting and cover image generation.
//
// Handlers depend on the Generator interface; the Gemini-backed
// implementation lives in gemini.go.
package generate

import (
	"context"
	"errors"
	"fmt"
)

type Language string

const (
	English Language = "en"
	Dutch   Language = "nl"
)

func (l Language) Valid() bool {
	return l == English || l == Dutch
}

type Length string

const (
	Short  Length = "short"
	Medium Length = "medium"
	Long   Length = "long"
)

func (l Length) Valid() bool {
	return l == Short || l == Medium || l == Long
}

// WordCountRange returns the article word-count band for the length.
func (l Length) WordCountRange() (min, max int) {
	switch l {
	case Short:
		return 600, 900
	case Long:
		return 2000, 2600
	default:
		return 1200, 1500
	}
}

var ErrInvalidRequest = errors.New("invalid generation request")

type OutlineRequest struct {
	Topic    string   `json:"topic"`
	Language Language `json:"language"`
	Length   Length   `json:"length"`
	Audience string   `json:"audience,omitempty"`
}

// Validate fills defaults and rejects unusable input. Validation failures
// never reach the upstream provider.
func (r *OutlineRequest) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	}
	if r.Language == "" {
		r.Language = English
	}
	if !r.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, r.Language)
	}
	if r.Length == "" {
		r.Length = Medium
	}
	if !r.Length.Valid() {
		return fmt.Errorf("%w: unknown length %q", ErrInvalidRequest, r.Length)
	}
	return nil
}

type OutlineSection struct {
	Heading   string   `json:"heading"`
	KeyPoints []string `json:"keyPoints"`
}

// Outline is the structured first-stage draft; the user edits it in place
// before asking for the full article.
type Outline struct {
	Title              string           `json:"title"`
	Sections           []OutlineSection `json:"sections"`
	Keywords           []string         `json:"keywords"`
	EstimatedWordCount int              `json:"estimatedWordCount"`
}

type ArticleRequest struct {
	Outline  Outline  `json:"outline"`
	Language Language `json:"language"`
	Length   Length   `json:"length"`
	Audience string   `json:"audience,omitempty"`
}

func (r *ArticleRequest) Validate() error {
	if r.Outline.Title == "" {
		return fmt.Errorf("%w: outline title is required", ErrInvalidRequest)
	}
	if len(r.Outline.Sections) == 0 {
		return fmt.Errorf("%w: outline has no sections", ErrInvalidRequest)
	}
	if r.Language == "" {
		r.Language = English
	}
	if !r.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, r.Language)
	}
	if r.Length == "" {
		r.Length = Medium
	}
	if !r.Length.Valid() {
		return fmt.Errorf("%w: unknown length %q", ErrInvalidRequest, r.Length)
	}
	return nil
}

type Article struct {
	ContentHTML     string   `json:"contentHtml"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	SuggestedTags   []string `json:"suggestedTags"`
}

type TopicsRequest struct {
	Theme    string   `json:"theme,omitempty"`
	Language Language `json:"language"`
	Count    int      `json:"count"`
}

func (r *TopicsRequest) Validate() error {
	if r.Language == "" {
		r.Language = English
	}
	if !r.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrInvalidRequest, r.Language)
	}
	if r.Count <= 0 {
		r.Count = 5
	}
	if r.Count > 20 {
		r.Count = 20
	}
	return nil
}

type Topic struct {
	Title     string `json:"title"`
	Keyword   string `json:"keyword"`
	Rationale string `json:"rationale"`
}

type ImageRequest struct {
	Topic string `json:"topic"`
	Style string `json:"style,omitempty"`
}

func (r *ImageRequest) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidRequest)
	}
	return nil
}

// ImageResult carries the generated image and its size statistics.
type ImageResult struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mimeType"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	ByteSize int    `json:"byteSize"`
}

type Generator interface {
	Outline(ctx context.Context, req OutlineRequest) (*Outline, error)
	Article(ctx context.Context, req ArticleRequest) (*Article, error)
	Topics(ctx context.Context, req TopicsRequest) ([]Topic, error)
	CoverImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}
