package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/markup"
)

// RenderInput is the input schema for the render_html tool.
type RenderInput struct {
	HTML     string `json:"html" jsonschema:"the HTML to parse"`
	Comments bool   `json:"comments,omitempty" jsonschema:"keep comments"`
	Strays   bool   `json:"strays,omitempty" jsonschema:"keep closing tags that match no open element"`
}

// RenderOutput is the output schema for the render_html tool.
type RenderOutput struct {
	HTML string `json:"html"`
}

// TextInput is the input schema for the strip_tags tool.
type TextInput struct {
	HTML string `json:"html" jsonschema:"the HTML to extract text from"`
}

// TextOutput is the output schema for the strip_tags tool.
type TextOutput struct {
	Text string `json:"text"`
}

// ExcerptInput is the input schema for the excerpt tool.
type ExcerptInput struct {
	HTML      string  `json:"html" jsonschema:"the HTML to summarise"`
	MaxLength int     `json:"max_length,omitempty" jsonschema:"target length in characters (default from config)"`
	Suffix    *string `json:"suffix,omitempty" jsonschema:"appended when the text is shortened (default from config)"`
}

// ExcerptOutput is the output schema for the excerpt tool.
type ExcerptOutput struct {
	Excerpt string `json:"excerpt"`
}

// AttributesInput is the input schema for the list_attributes tool.
type AttributesInput struct {
	HTML string `json:"html" jsonschema:"the HTML to inspect"`
	Tag  string `json:"tag,omitempty" jsonschema:"only list elements with this tag name"`
}

// AttributesOutput is the output schema for the list_attributes tool.
type AttributesOutput struct {
	Elements []driving.ElementAttributes `json:"elements"`
	Count    int                         `json:"count"`
}

// IndexInput is the input schema for the index_path tool.
type IndexInput struct {
	Path string `json:"path" jsonschema:"an HTML file or a directory to index recursively"`
}

// IndexOutput is the output schema for the index_path tool.
type IndexOutput struct {
	Results []IndexResultOutput `json:"results"`
	Indexed int                 `json:"indexed"`
	Failed  int                 `json:"failed"`
}

// IndexResultOutput is the outcome of indexing one file.
type IndexResultOutput struct {
	Path       string `json:"path"`
	DocumentID string `json:"document_id,omitempty"`
	Title      string `json:"title,omitempty"`
	Error      string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_html",
		Description: "Parse HTML and return it as normalised markup with every element closed",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "strip_tags",
		Description: "Return the readable text of HTML without markup, scripts or tables",
	}, s.handleStripTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "excerpt",
		Description: "Return a short excerpt of the text of HTML, cut at a sentence or word boundary",
	}, s.handleExcerpt)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_attributes",
		Description: "List the decoded attributes of the elements in HTML",
	}, s.handleAttributes)

	if s.ports.Document != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "index_path",
			Description: "Add an HTML file, or every HTML file in a directory, to the document index",
		}, s.handleIndex)
	}
}

// handleRender handles the render_html tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	opts := markup.RenderOptions{Comments: input.Comments, Strays: input.Strays}
	return nil, RenderOutput{HTML: s.ports.Markup.Render(input.HTML, opts)}, nil
}

// handleStripTags handles the strip_tags tool invocation.
func (s *Server) handleStripTags(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Text: s.ports.Markup.Text(input.HTML)}, nil
}

// handleExcerpt handles the excerpt tool invocation.
func (s *Server) handleExcerpt(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExcerptInput,
) (*mcp.CallToolResult, ExcerptOutput, error) {
	if input.MaxLength < 0 {
		return nil, ExcerptOutput{}, fmt.Errorf("max_length must not be negative, got %d", input.MaxLength)
	}
	req := driving.ExcerptRequest{MaxLength: input.MaxLength, Suffix: input.Suffix}
	return nil, ExcerptOutput{Excerpt: s.ports.Markup.Excerpt(input.HTML, req)}, nil
}

// handleAttributes handles the list_attributes tool invocation.
func (s *Server) handleAttributes(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AttributesInput,
) (*mcp.CallToolResult, AttributesOutput, error) {
	elements := s.ports.Markup.Attributes(input.HTML, input.Tag)
	if elements == nil {
		elements = []driving.ElementAttributes{}
	}
	return nil, AttributesOutput{Elements: elements, Count: len(elements)}, nil
}

// handleIndex handles the index_path tool invocation.
func (s *Server) handleIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexInput,
) (*mcp.CallToolResult, IndexOutput, error) {
	output := IndexOutput{Results: []IndexResultOutput{}}
	err := s.ports.Document.IndexAll(ctx, input.Path, func(r driving.IndexResult) {
		result := IndexResultOutput{Path: r.Path}
		if r.Err != nil {
			result.Error = r.Err.Error()
			output.Failed++
		} else {
			result.DocumentID = r.Document.ID
			result.Title = r.Document.Title
			output.Indexed++
		}
		output.Results = append(output.Results, result)
	})
	if err != nil {
		return nil, IndexOutput{}, fmt.Errorf("indexing %s: %w", input.Path, err)
	}

	log.Debug("indexed %d files from %s, %d failed", output.Indexed, input.Path, output.Failed)
	return nil, output, nil
}
