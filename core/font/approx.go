package font

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// approximateGlyphs maps characters without metrics of their own to Latin
// letters of similar shape. Cyrillic letters with both ascenders and
// descenders prefer look-alikes with ascenders.
var approximateGlyphs = map[rune]rune{
	// Latin-1
	'Å': 'A', 'Ç': 'C', 'Ð': 'D', 'Þ': 'o',
	'å': 'a', 'ç': 'c', 'ð': 'd', 'þ': 'o',
	// Cyrillic
	'А': 'A', 'Б': 'B', 'В': 'B', 'Г': 'F', 'Д': 'A', 'Е': 'E', 'Ж': 'K', 'З': '3',
	'И': 'N', 'Й': 'N', 'К': 'K', 'Л': 'N', 'М': 'M', 'Н': 'H', 'О': 'O', 'П': 'N',
	'Р': 'P', 'С': 'C', 'Т': 'T', 'У': 'y', 'Ф': 'O', 'Х': 'X', 'Ц': 'U', 'Ч': 'h',
	'Ш': 'W', 'Щ': 'W', 'Ъ': 'B', 'Ы': 'X', 'Ь': 'B', 'Э': '3', 'Ю': 'X', 'Я': 'R',
	'а': 'a', 'б': 'b', 'в': 'a', 'г': 'r', 'д': 'y', 'е': 'e', 'ж': 'm', 'з': 'e',
	'и': 'n', 'й': 'n', 'к': 'n', 'л': 'n', 'м': 'm', 'н': 'n', 'о': 'o', 'п': 'n',
	'р': 'p', 'с': 'c', 'т': 'o', 'у': 'y', 'ф': 'b', 'х': 'x', 'ц': 'n', 'ч': 'n',
	'ш': 'w', 'щ': 'w', 'ъ': 'a', 'ы': 'm', 'ь': 'a', 'э': 'e', 'ю': 'm', 'я': 'r',
}

// ApproximateGlyph returns the Latin look-alike of a character, if there is one.
func ApproximateGlyph(ch rune) (rune, bool) {
	r, ok := approximateGlyphs[ch]
	return r, ok
}

// supportedScripts are the scripts accepted in text mode, even without
// metrics of their own.
var supportedScripts = rangetable.Merge(
	&unicode.RangeTable{ // Latin extended
		R16: []unicode.Range16{{Lo: 0x0100, Hi: 0x024f, Stride: 1}, {Lo: 0x0300, Hi: 0x036f, Stride: 1}},
	},
	&unicode.RangeTable{ // Cyrillic
		R16: []unicode.Range16{{Lo: 0x0400, Hi: 0x04ff, Stride: 1}},
	},
	&unicode.RangeTable{ // Armenian
		R16: []unicode.Range16{{Lo: 0x0530, Hi: 0x058f, Stride: 1}},
	},
	&unicode.RangeTable{ // Brahmic scripts, from Devanagari to Myanmar
		R16: []unicode.Range16{{Lo: 0x0900, Hi: 0x109f, Stride: 1}},
	},
	&unicode.RangeTable{ // Georgian
		R16: []unicode.Range16{{Lo: 0x10a0, Hi: 0x10ff, Stride: 1}},
	},
	&unicode.RangeTable{ // CJK
		R16: []unicode.Range16{
			{Lo: 0x3000, Hi: 0x30ff, Stride: 1},
			{Lo: 0x4e00, Hi: 0x9faf, Stride: 1},
			{Lo: 0xff00, Hi: 0xff60, Stride: 1},
		},
	},
	&unicode.RangeTable{ // Hangul
		R16: []unicode.Range16{{Lo: 0xac00, Hi: 0xd7af, Stride: 1}},
	},
)

// SupportedCodepoint is true for characters of scripts supported in text mode.
func SupportedCodepoint(ch rune) bool {
	return unicode.Is(supportedScripts, ch)
}
