package docs

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/components"
	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/render/htmlrender"
	"github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/render/template/pongo"
	"github.com/goliatone/go-formfield/pkg/render/tree"
)

// PageRendererName is the registry key of the page renderer.
const PageRendererName = "page"

const pageTemplate = "page"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Templates exposes the embedded page templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

type PageOption func(*Page)

// WithEngine replaces the template engine. The engine must provide a "page"
// template.
func WithEngine(engine template.TemplateRenderer) PageOption {
	return func(p *Page) {
		if engine != nil {
			p.engine = engine
		}
	}
}

// WithComponentRegistry sets the registry used to resolve stylesheets.
func WithComponentRegistry(registry *components.Registry) PageOption {
	return func(p *Page) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// WithThemeSelector resolves the page theme when RenderOptions carry none.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) PageOption {
	return func(p *Page) {
		p.selector = selector
		p.themeName = name
		p.themeVariant = variant
	}
}

// WithTitle sets the document title.
func WithTitle(title string) PageOption {
	return func(p *Page) {
		if title != "" {
			p.title = title
		}
	}
}

// WithTree adds the JSON element tree under each rendered example.
func WithTree() PageOption {
	return func(p *Page) {
		p.showTree = true
	}
}

func WithLogger(logger *zap.Logger) PageOption {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Page renders examples, or a single element tree, into a complete HTML
// document.
type Page struct {
	engine       template.TemplateRenderer
	html         *htmlrender.Renderer
	tree         *tree.Renderer
	registry     *components.Registry
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	title        string
	showTree     bool
	logger       *zap.Logger
}

var _ render.Renderer = (*Page)(nil)

func NewPage(options ...PageOption) (*Page, error) {
	p := &Page{
		html:   htmlrender.New(),
		tree:   tree.New(tree.WithIndent("  ")),
		title:  "Examples",
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	if p.registry == nil {
		p.registry = components.NewDefaultRegistry()
		if err := form.RegisterComponents(p.registry, p.logger); err != nil {
			return nil, fmt.Errorf("docs: register form components: %w", err)
		}
	}
	if p.engine == nil {
		engine, err := pongo.New(pongo.WithFS(Templates()))
		if err != nil {
			return nil, fmt.Errorf("docs: template engine: %w", err)
		}
		p.engine = engine
	}
	return p, nil
}

func (p *Page) Name() string {
	return PageRendererName
}

func (p *Page) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps node in a page as a single untitled example.
func (p *Page) Render(ctx context.Context, node element.Node, options render.RenderOptions) ([]byte, error) {
	return p.RenderExamples(ctx, []Example{{
		Name:  "form",
		Title: p.title,
		Build: static(node),
	}}, options)
}

type pageExample struct {
	Name        string
	Title       string
	Description string
	Markup      string
	Tree        string
}

type pageSection struct {
	Name     string
	Examples []pageExample
}

// RenderExamples builds every example and renders the page. Stylesheets are
// collected from the components the examples use.
func (p *Page) RenderExamples(ctx context.Context, examples []Example, options render.RenderOptions) ([]byte, error) {
	if len(examples) == 0 {
		return nil, errors.New("docs: no examples to render")
	}

	cfg, err := p.themeConfig(options.Theme)
	if err != nil {
		return nil, err
	}

	var used []string
	seen := make(map[string]struct{})
	sections := make([]pageSection, 0)
	for _, section := range Sections(examples) {
		out := pageSection{Name: section.Name}
		for _, example := range section.Examples {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rendered, names, err := p.renderExample(ctx, example, options)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				if _, ok := seen[name]; !ok {
					seen[name] = struct{}{}
					used = append(used, name)
				}
			}
			out.Examples = append(out.Examples, rendered)
		}
		sections = append(sections, out)
	}

	themeData := map[string]any{}
	if cfg != nil {
		themeData["name"] = cfg.Theme
		themeData["variant"] = cfg.Variant
		themeData["css_vars"] = CSSVarsStyle(cfg.CSSVars)
	}

	data := map[string]any{
		"lang":        "en",
		"title":       p.title,
		"theme":       themeData,
		"stylesheets": p.stylesheets(used, cfg),
		"sections":    sections,
	}

	out, err := p.engine.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("docs: render page: %w", err)
	}
	p.logger.Debug("rendered docs page",
		zap.Int("examples", len(examples)),
		zap.Strings("components", used),
	)
	return []byte(out), nil
}

func (p *Page) renderExample(ctx context.Context, example Example, options render.RenderOptions) (pageExample, []string, error) {
	node, err := example.Build()
	if err != nil {
		return pageExample{}, nil, fmt.Errorf("docs: build example %q: %w", example.Name, err)
	}
	markup, err := p.html.Render(ctx, node, options)
	if err != nil {
		return pageExample{}, nil, fmt.Errorf("docs: render example %q: %w", example.Name, err)
	}

	rendered := pageExample{
		Name:        example.Name,
		Title:       example.Title,
		Description: example.Description,
		Markup:      string(markup),
	}
	if p.showTree {
		dump, err := p.tree.Render(ctx, node, options)
		if err != nil {
			return pageExample{}, nil, fmt.Errorf("docs: dump example %q: %w", example.Name, err)
		}
		rendered.Tree = string(dump)
	}
	return rendered, render.Components(node), nil
}

func (p *Page) themeConfig(cfg *theme.RendererConfig) (*theme.RendererConfig, error) {
	if cfg != nil || p.selector == nil {
		return cfg, nil
	}
	selection, err := p.selector.Select(p.themeName, p.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("docs: select theme %q: %w", p.themeName, err)
	}
	return RendererConfig(selection), nil
}

func (p *Page) stylesheets(names []string, cfg *theme.RendererConfig) []string {
	hrefs := p.registry.Stylesheets(names)
	if cfg == nil || cfg.AssetURL == nil {
		return hrefs
	}
	out := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		if resolved := cfg.AssetURL(href); resolved != "" {
			out = append(out, resolved)
		}
	}
	return out
}
