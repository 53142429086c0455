// Package ui converte a árvore visual do menu administrativo em HTML.
package ui

import (
	"io"

	"github.com/vfg2006/clinic-admin-api/internal/domain"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Actions define os endpoints de ativação usados pela página
type Actions struct {
	EntryAction func(key string) string
	BackAction  string
}

// Paleta de destaque por tema de cor do card
var themeClasses = map[string]string{
	"blue":   "border-blue-500 text-blue-700 hover:bg-blue-50",
	"red":    "border-red-500 text-red-700 hover:bg-red-50",
	"green":  "border-green-500 text-green-700 hover:bg-green-50",
	"gray":   "border-gray-500 text-gray-700 hover:bg-gray-50",
	"purple": "border-purple-500 text-purple-700 hover:bg-purple-50",
	"orange": "border-orange-500 text-orange-700 hover:bg-orange-50",
}

// Render escreve a página completa a partir da árvore produzida pelo menu
func Render(w io.Writer, tree domain.ViewNode, actions Actions) error {
	heading, _ := tree.Child(domain.NodeHeading)

	return html.Doctype(
		html.HTML(
			html.Lang("es"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(heading.Text)),
			),
			html.Body(
				html.Class("min-h-screen bg-gray-100"),
				Node(tree, actions),
			),
		),
	).Render(w)
}

// Node converte um nó da árvore visual no componente HTML equivalente
func Node(n domain.ViewNode, actions Actions) g.Node {
	switch n.Kind {
	case domain.NodeContainer:
		return html.Main(html.Class("container mx-auto p-6"), children(n, actions))
	case domain.NodeHeading:
		return html.H1(html.Class("text-2xl font-bold"), g.Text(n.Text))
	case domain.NodeSubheading:
		return html.P(html.Class("text-gray-600 mb-6"), g.Text(n.Text))
	case domain.NodeGrid:
		return html.Div(html.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4"), children(n, actions))
	case domain.NodeCard:
		return card(n, actions)
	case domain.NodeIcon:
		return html.Span(
			html.Class("icon icon-"+n.Attr(domain.AttrName)),
			g.Attr("aria-hidden", "true"),
		)
	case domain.NodeTitle:
		return html.H2(html.Class("text-lg font-semibold"), g.Text(n.Text))
	case domain.NodeSubtitle:
		return html.P(html.Class("text-sm text-gray-500"), g.Text(n.Text))
	case domain.NodeLink:
		return backLink(n, actions)
	case domain.NodeLabel:
		return html.Span(g.Text(n.Text))
	default:
		return g.Group(nil)
	}
}

func card(n domain.ViewNode, actions Actions) g.Node {
	nodes := []g.Node{
		html.Class("rounded-lg border-l-4 bg-white p-4 shadow-sm " + themeClasses[n.Attr(domain.AttrTheme)]),
		g.Attr("data-entry", n.Attr(domain.AttrKey)),
	}
	if href := n.Attr(domain.AttrHref); href != "" {
		nodes = append(nodes, g.Attr("data-href", href))
	}

	return html.Form(
		html.Method("post"),
		html.Action(actions.EntryAction(n.Attr(domain.AttrKey))),
		html.Button(
			append(nodes, html.Type("submit"), children(n, actions))...,
		),
	)
}

// backLink é um link real para o dashboard; BackAction fica disponível
// para clientes que preferem acionar o retorno pela API
func backLink(n domain.ViewNode, actions Actions) g.Node {
	return html.Nav(
		html.Class("mt-8"),
		html.A(
			html.Href(n.Attr(domain.AttrHref)),
			html.Class("inline-flex items-center gap-2 text-blue-600 hover:underline"),
			g.Attr("data-action", actions.BackAction),
			children(n, actions),
		),
	)
}

func children(n domain.ViewNode, actions Actions) g.Node {
	nodes := make([]g.Node, 0, len(n.Children))
	for _, child := range n.Children {
		nodes = append(nodes, Node(child, actions))
	}
	return g.Group(nodes)
}
