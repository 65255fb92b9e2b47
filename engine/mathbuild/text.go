package mathbuild

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

var textFontFamilies = map[string]string{
	"\\text":       "",
	"\\textrm":     "textrm",
	"\\textsf":     "textsf",
	"\\texttt":     "texttt",
	"\\textnormal": "textrm",
}

var textFontWeights = map[string]string{
	"\\textbf": "textbf",
	"\\textmd": "textmd",
}

var textFontShapes = map[string]string{
	"\\textit": "textit",
	"\\textup": "textup",
}

func optionsWithTextFont(fontCmd string, opts *mathstyle.Options) *mathstyle.Options {
	if fontCmd == "" {
		return opts
	}
	if family, ok := textFontFamilies[fontCmd]; ok {
		if family == "" {
			return opts
		}
		return opts.WithTextFontFamily(family)
	}
	if weight, ok := textFontWeights[fontCmd]; ok {
		return opts.WithTextFontWeight(weight)
	}
	if shape, ok := textFontShapes[fontCmd]; ok {
		return opts.WithTextFontShape(shape)
	}
	tracer().Infof("unknown text font command %q", fontCmd)
	return opts
}

// buildText builds a run of text. Adjacent characters in the same font are
// combined into a single symbol.
func buildText(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error) {
	text, ok := node.(*parsenode.Text)
	if !ok {
		return nil, core.UnexpectedNodeShape("text", node)
	}
	textOpts := optionsWithTextFont(text.Font, opts)
	inner, err := env.BuildExpression(splitTextOrds(text.Body), textOpts, true)
	if err != nil {
		return nil, err
	}
	return MakeSpan([]rnode.Class{rnode.MOrd, rnode.TextClass}, TryCombineChars(inner), textOpts), nil
}

// splitTextOrds splits text ordinaries holding more than one grapheme into
// one ordinary per grapheme, as metrics are resolved per character.
// Command names are kept as they are.
func splitTextOrds(body []parsenode.Node) []parsenode.Node {
	var split []parsenode.Node
	for i, n := range body {
		ord, ok := n.(*parsenode.TextOrd)
		if !ok || strings.HasPrefix(ord.Text, "\\") {
			if split != nil {
				split = append(split, n)
			}
			continue
		}
		clusters := Graphemes(ord.Text)
		if len(clusters) <= 1 {
			if split != nil {
				split = append(split, n)
			}
			continue
		}
		if split == nil {
			split = append(make([]parsenode.Node, 0, len(body)+len(clusters)), body[:i]...)
		}
		for _, c := range clusters {
			split = append(split, &parsenode.TextOrd{Base: ord.Base, Text: c})
		}
	}
	if split == nil {
		return body
	}
	return split
}

var graphemeClassesOnce sync.Once

// Graphemes splits a string into grapheme clusters.
func Graphemes(s string) []string {
	graphemeClassesOnce.Do(grapheme.SetupGraphemeClasses)
	onGraphemes := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.Init(strings.NewReader(s))
	var clusters []string
	for seg.Next() {
		clusters = append(clusters, seg.Text())
	}
	return clusters
}
