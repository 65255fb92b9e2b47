package parsenode

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/symbols"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rawNode is the JSON form of all node kinds, in the shape of KaTeX's
// parse trees:
//
//	{ "type": "mathord", "mode": "math", "text": "x" }
type rawNode struct {
	Type      string                 `json:"type"`
	Mode      string                 `json:"mode,omitempty"`
	Text      string                 `json:"text,omitempty"`
	Family    string                 `json:"family,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Symbol    bool                   `json:"symbol,omitempty"`
	Limits    bool                   `json:"limits,omitempty"`
	Color     string                 `json:"color,omitempty"`
	Size      int                    `json:"size,omitempty"`
	Style     string                 `json:"style,omitempty"`
	Font      string                 `json:"font,omitempty"`
	Label     string                 `json:"label,omitempty"`
	Dimension *rawMeasurement        `json:"dimension,omitempty"`
	Width     *rawMeasurement        `json:"width,omitempty"`
	Height    *rawMeasurement        `json:"height,omitempty"`
	Shift     *rawMeasurement        `json:"shift,omitempty"`
	Body      jsoniter.RawMessage    `json:"body,omitempty"`
	Base      jsoniter.RawMessage    `json:"base,omitempty"`
	Sup       jsoniter.RawMessage    `json:"sup,omitempty"`
	Sub       jsoniter.RawMessage    `json:"sub,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

type rawMeasurement struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
}

// Decode reads a formula from JSON. The input is either a single node or an
// array of nodes.
func Decode(data []byte) ([]Node, error) {
	nodes, err := decodeList(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode formula")
	}
	return nodes, nil
}

func decodeList(data []byte) ([]Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	if data[0] != '[' {
		n, err := decodeNode(data)
		if err != nil {
			return nil, err
		}
		return []Node{n}, nil
	}
	var raws []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(raws))
	for _, r := range raws {
		n, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func decodeSingle(data []byte) (Node, error) {
	nodes, err := decodeList(data)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return &OrdGroup{Base: Base{NodeMode: nodes[0].Mode()}, Body: nodes}, nil
}

func decodeNode(data []byte) (Node, error) {
	var r rawNode
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	base := InMath
	switch r.Mode {
	case "", "math":
	case "text":
		base = InText
	default:
		return nil, fmt.Errorf("illegal mode %q", r.Mode)
	}
	body, err := decodeList(r.Body)
	if err != nil {
		return nil, err
	}
	switch NodeType(r.Type) {
	case TypeMathOrd:
		return &MathOrd{Base: base, Text: r.Text}, nil
	case TypeTextOrd:
		return &TextOrd{Base: base, Text: r.Text}, nil
	case TypeAtom:
		fam := symbols.Group(r.Family)
		if !fam.IsAtom() {
			return nil, fmt.Errorf("illegal atom family %q", r.Family)
		}
		return &Atom{Base: base, Family: fam, Text: r.Text}, nil
	case TypeOp:
		return &Op{Base: base, Name: r.Name, Symbol: r.Symbol, Limits: r.Limits, Body: body}, nil
	case TypeOrdGroup:
		return &OrdGroup{Base: base, Body: body}, nil
	case TypeColor:
		return &Color{Base: base, Color: r.Color, Body: body}, nil
	case TypeSizing:
		return &Sizing{Base: base, Size: r.Size, Body: body}, nil
	case TypeStyling:
		return &Styling{Base: base, Style: r.Style, Body: body}, nil
	case TypeFont:
		n, err := decodeSingle(r.Body)
		return &Font{Base: base, Font: r.Font, Body: n}, err
	case TypeText:
		return &Text{Base: base, Font: r.Font, Body: body}, nil
	case TypeKern:
		return &Kern{Base: base, Dimension: r.Dimension.measurement()}, nil
	case TypeSpacing:
		return &Spacing{Base: base, Text: r.Text}, nil
	case TypeNewline:
		return &Newline{Base: base}, nil
	case TypeSupSub:
		ss := &SupSub{Base: base}
		if ss.Nucleus, err = decodeSingle(r.Base); err != nil {
			return nil, err
		}
		if ss.Sup, err = decodeSingle(r.Sup); err != nil {
			return nil, err
		}
		ss.Sub, err = decodeSingle(r.Sub)
		return ss, err
	case TypeAccent:
		n, err := decodeSingle(r.Base)
		return &Accent{Base: base, Label: r.Label, Body: n}, err
	case TypeRule:
		return &Rule{Base: base, Width: r.Width.measurement(), Height: r.Height.measurement(),
			Shift: r.Shift.measurement()}, nil
	case TypeOverline:
		n, err := decodeSingle(r.Body)
		return &Overline{Base: base, Body: n}, err
	case "":
		return nil, fmt.Errorf("node without type")
	}
	return &Custom{Base: base, Kind: NodeType(r.Type), Fields: r.Fields, Body: body}, nil
}

func (m *rawMeasurement) measurement() dimen.Measurement {
	if m == nil {
		return dimen.Measurement{Unit: dimen.UnitEM}
	}
	return dimen.Measurement{Number: m.Number, Unit: dimen.Unit(m.Unit)}
}

func raw(m dimen.Measurement) *rawMeasurement {
	return &rawMeasurement{Number: m.Number, Unit: string(m.Unit)}
}

// Encode writes a formula as JSON, in the format read by Decode.
func Encode(nodes []Node) ([]byte, error) {
	raws, err := encodeList(nodes)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raws)
}

func encodeList(nodes []Node) ([]*rawNode, error) {
	raws := make([]*rawNode, 0, len(nodes))
	for _, n := range nodes {
		r, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		raws = append(raws, r)
	}
	return raws, nil
}

func encodeSingle(n Node) (jsoniter.RawMessage, error) {
	if n == nil {
		return nil, nil
	}
	r, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

func encodeBody(nodes []Node) (jsoniter.RawMessage, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	raws, err := encodeList(nodes)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raws)
}

func encodeNode(n Node) (r *rawNode, err error) {
	r = &rawNode{Type: string(n.Type()), Mode: n.Mode().String()}
	switch x := n.(type) {
	case *MathOrd:
		r.Text = x.Text
	case *TextOrd:
		r.Text = x.Text
	case *Atom:
		r.Family, r.Text = string(x.Family), x.Text
	case *Op:
		r.Name, r.Symbol, r.Limits = x.Name, x.Symbol, x.Limits
		r.Body, err = encodeBody(x.Body)
	case *OrdGroup:
		r.Body, err = encodeBody(x.Body)
	case *Color:
		r.Color = x.Color
		r.Body, err = encodeBody(x.Body)
	case *Sizing:
		r.Size = x.Size
		r.Body, err = encodeBody(x.Body)
	case *Styling:
		r.Style = x.Style
		r.Body, err = encodeBody(x.Body)
	case *Font:
		r.Font = x.Font
		r.Body, err = encodeSingle(x.Body)
	case *Text:
		r.Font = x.Font
		r.Body, err = encodeBody(x.Body)
	case *Kern:
		r.Dimension = raw(x.Dimension)
	case *Spacing:
		r.Text = x.Text
	case *Newline:
	case *SupSub:
		if r.Base, err = encodeSingle(x.Nucleus); err != nil {
			return nil, err
		}
		if r.Sup, err = encodeSingle(x.Sup); err != nil {
			return nil, err
		}
		r.Sub, err = encodeSingle(x.Sub)
	case *Accent:
		r.Label = x.Label
		r.Base, err = encodeSingle(x.Body)
	case *Rule:
		r.Width, r.Height, r.Shift = raw(x.Width), raw(x.Height), raw(x.Shift)
	case *Overline:
		r.Body, err = encodeSingle(x.Body)
	case *Custom:
		r.Fields = x.Fields
		r.Body, err = encodeBody(x.Body)
	default:
		return nil, core.UnexpectedNodeShape("json", n)
	}
	return r, err
}
