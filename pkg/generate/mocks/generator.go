// Package mocks provides a hand-written Generator test double.
package mocks

import (
	"context"

	"github.com/psmphuket/portal/pkg/db/mocks"
	"github.com/psmphuket/portal/pkg/generate"
)

type Generator struct {
	Impl struct {
		Outline    func(ctx context.Context, req generate.OutlineRequest) (*generate.Outline, error)
		Article    func(ctx context.Context, req generate.ArticleRequest) (*generate.Article, error)
		Topics     func(ctx context.Context, req generate.TopicsRequest) ([]generate.Topic, error)
		CoverImage func(ctx context.Context, req generate.ImageRequest) (*generate.ImageResult, error)
	}
	Calls struct {
		Outline    mocks.CallLog[generate.OutlineRequest]
		Article    mocks.CallLog[generate.ArticleRequest]
		Topics     mocks.CallLog[generate.TopicsRequest]
		CoverImage mocks.CallLog[generate.ImageRequest]
	}
}

func NewGenerator() *Generator {
	return &Generator{}
}

var _ generate.Generator = &Generator{}

func (m *Generator) Outline(ctx context.Context, req generate.OutlineRequest) (*generate.Outline, error) {
	m.Calls.Outline = append(m.Calls.Outline, req)
	if m.Impl.Outline == nil {
		panic("Outline should not be called")
	}
	return m.Impl.Outline(ctx, req)
}

func (m *Generator) Article(ctx context.Context, req generate.ArticleRequest) (*generate.Article, error) {
	m.Calls.Article = append(m.Calls.Article, req)
	if m.Impl.Article == nil {
		panic("Article should not be called")
	}
	return m.Impl.Article(ctx, req)
}

func (m *Generator) Topics(ctx context.Context, req generate.TopicsRequest) ([]generate.Topic, error) {
	m.Calls.Topics = append(m.Calls.Topics, req)
	if m.Impl.Topics == nil {
		panic("Topics should not be called")
	}
	return m.Impl.Topics(ctx, req)
}

func (m *Generator) CoverImage(ctx context.Context, req generate.ImageRequest) (*generate.ImageResult, error) {
	m.Calls.CoverImage = append(m.Calls.CoverImage, req)
	if m.Impl.CoverImage == nil {
		panic("CoverImage should not be called")
	}
	return m.Impl.CoverImage(ctx, req)
}
