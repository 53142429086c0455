package domain

// MenuEntry representa um card de navegação do menu administrativo
type MenuEntry struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	IconKey     string `json:"icon_key"`
	ColorTheme  string `json:"color_theme"`
	TargetRoute string `json:"target_route,omitempty"` // vazio quando o card não tem destino
}

// HasTarget indica se o card possui rota de destino vinculada
func (e MenuEntry) HasTarget() bool {
	return e.TargetRoute != ""
}

// Tipos de nó da árvore visual
const (
	NodeContainer  = "container"
	NodeHeading    = "heading"
	NodeSubheading = "subheading"
	NodeGrid       = "grid"
	NodeCard       = "card"
	NodeIcon       = "icon"
	NodeTitle      = "title"
	NodeSubtitle   = "subtitle"
	NodeLink       = "link"
	NodeLabel      = "label"
)

// Atributos conhecidos dos nós
const (
	AttrKey   = "key"
	AttrIcon  = "icon"
	AttrTheme = "theme"
	AttrHref  = "href"
	AttrName  = "name"
)

// ViewNode é um nó da descrição da interface produzida pelo menu
type ViewNode struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []ViewNode        `json:"children,omitempty"`
}

// Attr retorna o valor de um atributo do nó
func (n ViewNode) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// Find retorna, em ordem de leitura, todos os nós do tipo informado
func (n ViewNode) Find(kind string) []ViewNode {
	var found []ViewNode
	if n.Kind == kind {
		found = append(found, n)
	}
	for _, child := range n.Children {
		found = append(found, child.Find(kind)...)
	}
	return found
}

// Child retorna o primeiro filho direto do tipo informado
func (n ViewNode) Child(kind string) (ViewNode, bool) {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child, true
		}
	}
	return ViewNode{}, false
}
