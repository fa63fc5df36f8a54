package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

// Gemini implements Generator on Google's GenAI API. One fixed timeout per
// request, no retries: a failed generation is reported to the user as-is.
type Gemini struct {
	client     *genai.Client
	textModel  string
	imageModel string
	timeout    time.Duration
}

func NewGemini(ctx context.Context, apiKey, textModel, imageModel string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("can not create GenAI client: %w", err)
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Gemini{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
		timeout:    timeout,
	}, nil
}

var _ Generator = &Gemini{}

var languageNames = map[Language]string{
	English: "English",
	Dutch:   "Dutch",
}

func (g *Gemini) Outline(ctx context.Context, req OutlineRequest) (*Outline, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	min, max := req.Length.WordCountRange()
	prompt := fmt.Sprintf(
		`Draft a blog article outline for a Phuket real-estate brokerage.
Topic: %s
Write in %s. Target %d-%d words in total.
%s
Return JSON: title, sections (array of {heading, keyPoints}), keywords,
estimatedWordCount (between %d and %d).`,
		req.Topic, languageNames[req.Language], min, max,
		audienceLine(req.Audience), min, max,
	)

	var outline Outline
	if err := g.generateJSON(ctx, prompt, &outline); err != nil {
		return nil, err
	}
	if outline.Title == "" || len(outline.Sections) == 0 {
		return nil, fmt.Errorf("generation returned an empty outline")
	}
	// the model occasionally drifts out of the requested band
	if outline.EstimatedWordCount < min {
		outline.EstimatedWordCount = min
	}
	if outline.EstimatedWordCount > max {
		outline.EstimatedWordCount = max
	}
	return &outline, nil
}

func (g *Gemini) Article(ctx context.Context, req ArticleRequest) (*Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	min, max := req.Length.WordCountRange()
	perSection := (min + max) / 2 / len(req.Outline.Sections)

	// section bodies are independent; draft them concurrently and
	// assemble in outline order
	bodies := make([]string, len(req.Outline.Sections))
	eg, sctx := errgroup.WithContext(ctx)
	for i, section := range req.Outline.Sections {
		eg.Go(func() error {
			prompt := fmt.Sprintf(
				`Write the body of one blog section for a Phuket real-estate article titled %q.
Section heading: %s
Cover these points: %s
Write in %s, about %d words.
%s
Return HTML paragraphs only (<p>, <ul>), without the heading itself.`,
				req.Outline.Title, section.Heading,
				strings.Join(section.KeyPoints, "; "),
				languageNames[req.Language], perSection,
				audienceLine(req.Audience),
			)
			body, err := g.generateText(sctx, prompt)
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var assembled strings.Builder
	for i, section := range req.Outline.Sections {
		fmt.Fprintf(&assembled, "<h2>%s</h2>\n%s\n", section.Heading, bodies[i])
	}

	seoPrompt := fmt.Sprintf(
		`For a blog article titled %q about %s, written in %s, return JSON:
metaTitle (max 60 chars), metaDescription (max 155 chars),
suggestedTags (3-6 short tags).`,
		req.Outline.Title,
		strings.Join(req.Outline.Keywords, ", "),
		languageNames[req.Language],
	)
	var meta struct {
		MetaTitle       string   `json:"metaTitle"`
		MetaDescription string   `json:"metaDescription"`
		SuggestedTags   []string `json:"suggestedTags"`
	}
	if err := g.generateJSON(ctx, seoPrompt, &meta); err != nil {
		return nil, err
	}

	return &Article{
		ContentHTML:     assembled.String(),
		MetaTitle:       meta.MetaTitle,
		MetaDescription: meta.MetaDescription,
		SuggestedTags:   meta.SuggestedTags,
	}, nil
}

func (g *Gemini) Topics(ctx context.Context, req TopicsRequest) ([]Topic, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	theme := req.Theme
	if theme == "" {
		theme = "buying, renting and investing in Phuket property"
	}
	prompt := fmt.Sprintf(
		`Suggest %d blog topics for a Phuket real-estate brokerage, theme: %s.
Write in %s. Return a JSON array of {title, keyword, rationale}.`,
		req.Count, theme, languageNames[req.Language],
	)

	var topics []Topic
	if err := g.generateJSON(ctx, prompt, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (g *Gemini) CoverImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	style := req.Style
	if style == "" {
		style = "bright, editorial photography, tropical"
	}
	prompt := fmt.Sprintf(
		"Blog cover image for a Phuket real-estate article about: %s. Style: %s. No text overlay.",
		req.Topic, style,
	)

	resp, err := g.client.Models.GenerateImages(ctx, g.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("image generation returned no image")
	}
	img := resp.GeneratedImages[0].Image
	return NewImageResult(img.ImageBytes, img.MIMEType), nil
}

func (g *Gemini) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("text generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("text generation returned an empty response")
	}
	return text, nil
}

func (g *Gemini) generateJSON(ctx context.Context, prompt string, out any) error {
	resp, err := g.client.Models.GenerateContent(
		ctx, g.textModel, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("text generation failed: %w", err)
	}
	text := resp.Text()
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("generation returned malformed JSON: %w", err)
	}
	return nil
}

func audienceLine(audience string) string {
	if audience == "" {
		return ""
	}
	return "Target audience: " + audience + "."
}
