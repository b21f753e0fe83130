package furnidata

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"furnidata-manager/core/utils"
)

// Tag names of the XML furnidata layout.
const (
	itemTag            = "furnitype"
	placeableParent    = "roomitemtypes"
	partColorsTag      = "partcolors"
	partColorTag       = "color"
	idAttribute        = "id"
	classNameAttribute = "classname"
)

var (
	errNoRoot        = errors.New("furnidata: document has no root element")
	errMultipleRoots = errors.New("furnidata: document has more than one root element")
	errStrayText     = errors.New("furnidata: text outside the root element")
)

// element is a minimal DOM node: enough to answer the lookups the decoder makes.
type element struct {
	name     string
	attrs    map[string]string
	parent   *element
	children []*element
	// content interleaves text and child elements in document order.
	content []any
}

// attr returns the attribute value, or "" when it is absent.
func (e *element) attr(name string) string {
	return e.attrs[name]
}

// text returns the concatenated text of e and all of its descendants.
func (e *element) text() string {
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *element) writeText(b *strings.Builder) {
	for _, c := range e.content {
		switch v := c.(type) {
		case string:
			b.WriteString(v)
		case *element:
			v.writeText(b)
		}
	}
}

// descendants returns every descendant of e named name, in document order.
func (e *element) descendants(name string) []*element {
	var out []*element
	var walk func(*element)
	walk = func(n *element) {
		for _, c := range n.children {
			if c.name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// first returns the first descendant named name, or nil.
func (e *element) first(name string) *element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
		if found := c.first(name); found != nil {
			return found
		}
	}
	return nil
}

// childText returns the text of the first descendant named name, or "".
func (e *element) childText(name string) string {
	if c := e.first(name); c != nil {
		return c.text()
	}
	return ""
}

// qualifiedName keeps the prefix the way a namespace-unaware parser reports it.
func qualifiedName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

// parseDocument parses payload as one well-formed XML document and returns
// its root element. Comments, processing instructions and DOCTYPE
// declarations are skipped; external DTDs are never fetched.
func parseDocument(payload string) (*element, error) {
	d := xml.NewDecoder(strings.NewReader(payload))
	d.Strict = true
	// The payload is already decoded text, so the declared charset is moot.
	d.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }

	var (
		root    *element
		current *element
	)

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{
				name:   qualifiedName(t.Name),
				attrs:  make(map[string]string, len(t.Attr)),
				parent: current,
			}
			for _, a := range t.Attr {
				el.attrs[qualifiedName(a.Name)] = a.Value
			}
			if current == nil {
				if root != nil {
					return nil, errMultipleRoots
				}
				root = el
			} else {
				current.children = append(current.children, el)
				current.content = append(current.content, el)
			}
			current = el
		case xml.EndElement:
			current = current.parent
		case xml.CharData:
			if current == nil {
				if strings.TrimSpace(string(t)) != "" {
					return nil, errStrayText
				}
				continue
			}
			current.content = append(current.content, string(t))
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

// IsXML reports whether payload is a single well-formed XML document.
// Any parse failure means false; it is never reported as an error.
func IsXML(payload string) bool {
	_, err := parseDocument(payload)
	return err == nil
}

// DecodeXML decodes an XML furnidata document whose escape tokens were
// already replaced with sentinel. A payload that is not XML yields nil.
func DecodeXML(payload string, sentinel rune) []Item {
	root, err := parseDocument(payload)
	if err != nil {
		return nil
	}
	return decodeDocument(root, sentinel)
}

func decodeDocument(root *element, sentinel rune) []Item {
	var nodes []*element
	if root.name == itemTag {
		nodes = append(nodes, root)
	}
	nodes = append(nodes, root.descendants(itemTag)...)

	items := make([]Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, itemFromElement(node, sentinel))
	}
	return items
}

func itemFromElement(node *element, sentinel rune) Item {
	text := func(name string) string { return node.childText(name) }
	quoted := func(name string) string { return DecodeQuotes(text(name), sentinel) }

	item := Item{
		Kind:                KindOther,
		ID:                  utils.ToInt(node.attr(idAttribute)),
		ClassName:           node.attr(classNameAttribute),
		Revision:            utils.ToInt(quoted("revision")),
		Category:            quoted("category"),
		XDim:                utils.ToInt(text("xdim")),
		YDim:                utils.ToInt(text("ydim")),
		PartColors:          partColors(node),
		Name:                quoted("name"),
		Description:         quoted("description"),
		AdURL:               text("adurl"),
		OfferID:             utils.ToInt(text("offerid")),
		Buyout:              utils.IsTruthy(text("buyout")),
		RentOfferID:         utils.ToInt(text("rentofferid")),
		RentBuyout:          utils.ToInt(text("rentbuyout")),
		BuildersClub:        utils.IsTruthy(text("bc")),
		ExcludedDynamic:     utils.IsTruthy(text("excludeddynamic")),
		BuildersClubOfferID: utils.ToInt(text("bcofferid")),
		CustomParams:        text("customparams"),
		SpecialType:         utils.ToInt(text("specialtype")),
		CanStandOn:          utils.IsTruthy(text("canstandon")),
		CanSitOn:            utils.IsTruthy(text("cansiton")),
		CanLayOn:            utils.IsTruthy(text("canlayon")),
		FurniLine:           text("furniline"),
		Environment:         text("environment"),
		Rare:                utils.IsTruthy(text("rare")),
	}

	if node.parent != nil && strings.ToLower(node.parent.name) == placeableParent {
		item.Kind = KindPlaceable
	}

	item.finish()
	return item
}

// partColors joins the color entries under the first partcolors element.
func partColors(node *element) string {
	container := node.first(partColorsTag)
	if container == nil {
		return ""
	}
	colors := container.descendants(partColorTag)
	values := make([]string, 0, len(colors))
	for _, c := range colors {
		values = append(values, c.text())
	}
	return strings.Join(values, ",")
}
