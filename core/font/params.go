package font

// FontParams are the global parameters of the math fonts for a size class,
// in em. They correspond to TeX's \fontdimen parameters of the math symbol
// and extension fonts.
type FontParams struct {
	Slant                float64
	XHeight              float64
	Quad                 float64
	Num1, Num2, Num3     float64
	Denom1, Denom2       float64
	Sup1, Sup2, Sup3     float64
	Sub1, Sub2           float64
	SupDrop, SubDrop     float64
	Delim1, Delim2       float64
	AxisHeight           float64
	DefaultRuleThickness float64
	BigOpSpacing1        float64
	BigOpSpacing2        float64
	BigOpSpacing3        float64
	BigOpSpacing4        float64
	BigOpSpacing5        float64
	SqrtRuleThickness    float64
	PtPerEm              float64
	DoubleRuleSep        float64
	ArrayRuleWidth       float64
	FboxSep              float64
	FboxRule             float64
	CSSEmPerMu           float64 // 1/18 of a quad
}

// Parameter values for the three size classes: text and display style,
// script style, scriptscript style.
var sigmasAndXis = [3]FontParams{
	{
		Slant: 0.250, XHeight: 0.431, Quad: 1.000,
		Num1: 0.677, Num2: 0.394, Num3: 0.444, Denom1: 0.686, Denom2: 0.345,
		Sup1: 0.413, Sup2: 0.363, Sup3: 0.289, Sub1: 0.150, Sub2: 0.247,
		SupDrop: 0.386, SubDrop: 0.050, Delim1: 2.390, Delim2: 1.010,
		AxisHeight: 0.250, DefaultRuleThickness: 0.04,
		BigOpSpacing1: 0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.6, BigOpSpacing5: 0.1, SqrtRuleThickness: 0.04,
		PtPerEm: 10.0, DoubleRuleSep: 0.2, ArrayRuleWidth: 0.04,
		FboxSep: 0.3, FboxRule: 0.04,
	},
	{
		Slant: 0.250, XHeight: 0.431, Quad: 1.171,
		Num1: 0.732, Num2: 0.384, Num3: 0.471, Denom1: 0.752, Denom2: 0.344,
		Sup1: 0.503, Sup2: 0.431, Sup3: 0.286, Sub1: 0.143, Sub2: 0.286,
		SupDrop: 0.353, SubDrop: 0.071, Delim1: 1.700, Delim2: 1.157,
		AxisHeight: 0.250, DefaultRuleThickness: 0.049,
		BigOpSpacing1: 0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.611, BigOpSpacing5: 0.143, SqrtRuleThickness: 0.04,
		PtPerEm: 10.0, DoubleRuleSep: 0.2, ArrayRuleWidth: 0.04,
		FboxSep: 0.3, FboxRule: 0.04,
	},
	{
		Slant: 0.250, XHeight: 0.431, Quad: 1.472,
		Num1: 0.925, Num2: 0.387, Num3: 0.504, Denom1: 1.025, Denom2: 0.532,
		Sup1: 0.504, Sup2: 0.404, Sup3: 0.294, Sub1: 0.200, Sub2: 0.400,
		SupDrop: 0.494, SubDrop: 0.100, Delim1: 1.980, Delim2: 1.420,
		AxisHeight: 0.250, DefaultRuleThickness: 0.049,
		BigOpSpacing1: 0.111, BigOpSpacing2: 0.166, BigOpSpacing3: 0.2,
		BigOpSpacing4: 0.611, BigOpSpacing5: 0.143, SqrtRuleThickness: 0.04,
		PtPerEm: 10.0, DoubleRuleSep: 0.2, ArrayRuleWidth: 0.04,
		FboxSep: 0.3, FboxRule: 0.04,
	},
}

var fontParams [3]*FontParams

func init() {
	for i := range sigmasAndXis {
		p := sigmasAndXis[i]
		p.CSSEmPerMu = p.Quad / 18
		fontParams[i] = &p
	}
}

// ParamsForSize returns the font parameters for a size index (1…11).
// Sizes 5 and above use the text parameters, sizes 3 and 4 the script
// parameters, smaller sizes the scriptscript parameters.
//
// The returned parameters are shared and must not be modified.
func ParamsForSize(size int) *FontParams {
	switch {
	case size >= 5:
		return fontParams[0]
	case size >= 3:
		return fontParams[1]
	}
	return fontParams[2]
}
