package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/psmphuket/portal/pkg/api/types/errors"
	kdb "github.com/psmphuket/portal/pkg/db"
	"github.com/psmphuket/portal/pkg/generate"
)

// fromGenerateError keeps validation failures as 400 and surfaces
// provider failures as 502 with the upstream message.
func fromGenerateError(reason string, err error) error {
	if errors.Is(err, generate.ErrInvalidRequest) {
		return apierr.BadRequest(err.Error(), err)
	}
	return apierr.BadGateway(reason, err)
}

func GenerateOutlineHandler(gen generate.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req generate.OutlineRequest
		if err := decodeJSON(c, &req); err != nil {
			return err
		}

		outline, err := gen.Outline(ctx, req)
		if err != nil {
			return fromGenerateError("outline generation failed", err)
		}
		return c.JSON(http.StatusOK, outline)
	}
}

// GenerateContentHandler drafts the article for a (possibly user-edited)
// outline, then weaves the active internal links into the HTML.
func GenerateContentHandler(gen generate.Generator, dblink kdb.LinkInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req generate.ArticleRequest
		if err := decodeJSON(c, &req); err != nil {
			return err
		}

		article, err := gen.Article(ctx, req)
		if err != nil {
			return fromGenerateError("article generation failed", err)
		}

		active := true
		links, err := dblink.Find(ctx, kdb.LinkFindQuery{Active: &active})
		if err != nil {
			return fromDBError(err)
		}
		article.ContentHTML = generate.WeaveLinks(article.ContentHTML, links)

		return c.JSON(http.StatusOK, article)
	}
}

// GenerateSaveHandler persists a reviewed article as a blog post. Nothing
// is written before this explicit call.
func GenerateSaveHandler(dbblog kdb.BlogInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body struct {
			Title           string   `json:"title"`
			ContentHTML     string   `json:"contentHtml"`
			Excerpt         string   `json:"excerpt"`
			CoverImage      string   `json:"coverImage"`
			Tags            []string `json:"tags"`
			MetaTitle       string   `json:"metaTitle"`
			MetaDescription string   `json:"metaDescription"`
			Publish         bool     `json:"publish"`
		}
		if err := decodeJSON(c, &body); err != nil {
			return err
		}
		if body.Title == "" || body.ContentHTML == "" {
			return apierr.BadRequest("title and contentHtml are required", nil)
		}

		post := &kdb.BlogPost{
			Title:           body.Title,
			Content:         body.ContentHTML,
			Excerpt:         body.Excerpt,
			CoverImage:      body.CoverImage,
			Tags:            body.Tags,
			MetaTitle:       body.MetaTitle,
			MetaDescription: body.MetaDescription,
			Published:       body.Publish,
		}
		if body.Publish {
			now := time.Now()
			post.PublishedAt = &now
		}

		if err := dbblog.Register(ctx, post); err != nil {
			return fromDBError(err)
		}
		return c.JSON(http.StatusCreated, post)
	}
}

func SmartTopicsHandler(gen generate.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req generate.TopicsRequest
		if err := decodeJSON(c, &req); err != nil {
			return err
		}

		topics, err := gen.Topics(ctx, req)
		if err != nil {
			return fromGenerateError("topic discovery failed", err)
		}
		if topics == nil {
			topics = []generate.Topic{}
		}
		return c.JSON(http.StatusOK, topics)
	}
}

// SmartImageHandler generates a cover image and reports its statistics
// next to the base64 payload.
func SmartImageHandler(gen generate.Generator) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req generate.ImageRequest
		if err := decodeJSON(c, &req); err != nil {
			return err
		}

		result, err := gen.CoverImage(ctx, req)
		if err != nil {
			return fromGenerateError("image generation failed", err)
		}
		return c.JSON(http.StatusOK, map[string]any{
			"imageBase64": base64.StdEncoding.EncodeToString(result.Data),
			"mimeType":    result.MIMEType,
			"width":       result.Width,
			"height":      result.Height,
			"byteSize":    result.ByteSize,
		})
	}
}

// SmartLinksHandler lists the active internal links for the preview step.
func SmartLinksHandler(dblink kdb.LinkInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		active := true
		links, err := dblink.Find(ctx, kdb.LinkFindQuery{Active: &active})
		if err != nil {
			return fromDBError(err)
		}
		if links == nil {
			links = []kdb.InternalLink{}
		}
		return c.JSON(http.StatusOK, links)
	}
}
