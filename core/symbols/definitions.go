package symbols

// symdef is a row of the predefined symbol tables: a name and its replacement.
type symdef struct {
	replace, name string
}

type symgroup struct {
	font   Font
	group  Group
	accept bool // accept the replacement character as a name of its own
	defs   []symdef
}

var mathRelations = symgroup{Main, Rel, true, []symdef{
	{"≡", "\\equiv"}, {"≺", "\\prec"}, {"≻", "\\succ"},
	{"∼", "\\sim"}, {"⊥", "\\perp"}, {"⪯", "\\preceq"},
	{"⪰", "\\succeq"}, {"≃", "\\simeq"}, {"∣", "\\mid"},
	{"≪", "\\ll"}, {"≫", "\\gg"}, {"≍", "\\asymp"},
	{"∥", "\\parallel"}, {"⋈", "\\bowtie"}, {"⌣", "\\smile"},
	{"⊑", "\\sqsubseteq"}, {"⊒", "\\sqsupseteq"}, {"≐", "\\doteq"},
	{"⌢", "\\frown"}, {"∋", "\\ni"}, {"∝", "\\propto"},
	{"⊢", "\\vdash"}, {"⊣", "\\dashv"}, {"∋", "\\owns"},
	{"←", "\\leftarrow"}, {"←", "\\gets"}, {"→", "\\rightarrow"},
	{"→", "\\to"}, {"↔", "\\leftrightarrow"}, {"⇐", "\\Leftarrow"},
	{"⇒", "\\Rightarrow"}, {"⇔", "\\Leftrightarrow"}, {"↑", "\\uparrow"},
	{"↓", "\\downarrow"}, {"↦", "\\mapsto"}, {"⟵", "\\longleftarrow"},
	{"⟶", "\\longrightarrow"}, {"⟹", "\\Longrightarrow"}, {"⟺", "\\iff"},
	{"≤", "\\le"}, {"≤", "\\leq"}, {"≥", "\\ge"}, {"≥", "\\geq"},
	{"≠", "\\ne"}, {"≠", "\\neq"}, {"≈", "\\approx"},
	{"≅", "\\cong"}, {"∈", "\\in"}, {"⊂", "\\subset"},
	{"⊃", "\\supset"}, {"⊆", "\\subseteq"}, {"⊇", "\\supseteq"},
	{"⊨", "\\models"}, {"=", "="}, {"<", "\\lt"}, {">", "\\gt"},
	{"<", "<"}, {">", ">"}, {":", ":"},
}}

var mathBinaries = symgroup{Main, Bin, true, []symdef{
	{"∗", "\\ast"}, {"+", "+"}, {"−", "-"}, {"⋅", "\\cdot"},
	{"∘", "\\circ"}, {"÷", "\\div"}, {"±", "\\pm"},
	{"×", "\\times"}, {"∩", "\\cap"}, {"∪", "\\cup"},
	{"∖", "\\setminus"}, {"∧", "\\land"}, {"∨", "\\lor"},
	{"∧", "\\wedge"}, {"∨", "\\vee"}, {"∓", "\\mp"},
	{"⊎", "\\uplus"}, {"⊓", "\\sqcap"}, {"⊔", "\\sqcup"},
	{"≀", "\\wr"}, {"⊕", "\\oplus"}, {"⊖", "\\ominus"},
	{"⊗", "\\otimes"}, {"⊘", "\\oslash"}, {"⊙", "\\odot"},
	{"†", "\\dagger"}, {"‡", "\\ddagger"}, {"•", "\\bullet"},
	{"◯", "\\bigcirc"}, {"⋆", "\\star"}, {"⋄", "\\diamond"},
	{"⨿", "\\amalg"}, {"△", "\\bigtriangleup"}, {"▽", "\\bigtriangledown"},
	{"◃", "\\triangleleft"}, {"▹", "\\triangleright"},
}}

var mathOpenings = symgroup{Main, Open, true, []symdef{
	{"(", "("}, {"[", "["}, {"{", "\\{"}, {"{", "\\lbrace"}, {"[", "\\lbrack"},
	{"⟨", "\\langle"}, {"⌊", "\\lfloor"}, {"⌈", "\\lceil"},
	{"⎰", "\\lmoustache"}, {"⟮", "\\lgroup"},
}}

var mathClosings = symgroup{Main, Close, true, []symdef{
	{")", ")"}, {"]", "]"}, {"}", "\\}"}, {"}", "\\rbrace"}, {"]", "\\rbrack"},
	{"⟩", "\\rangle"}, {"⌋", "\\rfloor"}, {"⌉", "\\rceil"},
	{"⎱", "\\rmoustache"}, {"⟯", "\\rgroup"}, {"?", "?"}, {"!", "!"},
}}

var mathPunctuation = symgroup{Main, Punct, false, []symdef{
	{",", ","}, {";", ";"}, {":", "\\colon"}, {".", "\\ldotp"}, {"⋅", "\\cdotp"},
}}

var mathInner = symgroup{Main, Inner, false, []symdef{
	{"…", "\\ldots"}, {"…", "\\mathellipsis"}, {"⋯", "\\cdots"},
	{"⋱", "\\ddots"},
}}

var mathAccents = symgroup{Main, Accent, false, []symdef{
	{"\u02ca", "\\acute"}, {"\u02cb", "\\grave"}, {"\u00a8", "\\ddot"},
	{"~", "\\tilde"}, {"\u02c9", "\\bar"}, {"\u02d8", "\\breve"},
	{"\u02c7", "\\check"}, {"^", "\\hat"}, {"\u20d7", "\\vec"},
	{"\u02d9", "\\dot"}, {"\u02da", "\\mathring"},
}}

var mathOperators = symgroup{Main, OpToken, true, []symdef{
	{"∐", "\\coprod"}, {"⋁", "\\bigvee"}, {"⋀", "\\bigwedge"},
	{"⨄", "\\biguplus"}, {"⋂", "\\bigcap"}, {"⋃", "\\bigcup"},
	{"∫", "\\int"}, {"∫", "\\intop"}, {"∬", "\\iint"},
	{"∭", "\\iiint"}, {"∏", "\\prod"}, {"∑", "\\sum"},
	{"⨂", "\\bigotimes"}, {"⨁", "\\bigoplus"}, {"⨀", "\\bigodot"},
	{"∮", "\\oint"}, {"∯", "\\oiint"}, {"∰", "\\oiiint"},
	{"⨆", "\\bigsqcup"}, {"∫", "\\smallint"},
}}

var mathOrdinaries = symgroup{Main, TextOrd, true, []symdef{
	{"∠", "\\angle"}, {"∞", "\\infty"}, {"′", "\\prime"},
	{"△", "\\triangle"}, {"Γ", "\\Gamma"}, {"Δ", "\\Delta"},
	{"Θ", "\\Theta"}, {"Λ", "\\Lambda"}, {"Ξ", "\\Xi"},
	{"Π", "\\Pi"}, {"Σ", "\\Sigma"}, {"Υ", "\\Upsilon"},
	{"Φ", "\\Phi"}, {"Ψ", "\\Psi"}, {"Ω", "\\Omega"},
	{"¬", "\\neg"}, {"¬", "\\lnot"}, {"⊤", "\\top"},
	{"⊥", "\\bot"}, {"∅", "\\emptyset"}, {"∀", "\\forall"},
	{"∃", "\\exists"}, {"∂", "\\partial"}, {"∇", "\\nabla"},
	{"♭", "\\flat"}, {"♮", "\\natural"}, {"♯", "\\sharp"},
	{"♣", "\\clubsuit"}, {"♢", "\\diamondsuit"}, {"♡", "\\heartsuit"},
	{"♠", "\\spadesuit"}, {"ℓ", "\\ell"}, {"℘", "\\wp"},
	{"ℜ", "\\Re"}, {"ℑ", "\\Im"}, {"ℵ", "\\aleph"},
	{"ℏ", "\\hbar"}, {"§", "\\S"}, {"¶", "\\P"},
	{"†", "\\dag"}, {"‡", "\\ddag"},
}}

var mathDelimiterOrds = symgroup{Main, TextOrd, false, []symdef{
	{"∥", "\\|"}, {"∥", "\\Vert"}, {"∣", "|"}, {"∣", "\\vert"},
	{"'", "'"},
}}

var mathGreek = symgroup{Main, MathOrd, true, []symdef{
	{"α", "\\alpha"}, {"β", "\\beta"}, {"γ", "\\gamma"},
	{"δ", "\\delta"}, {"ϵ", "\\epsilon"}, {"ζ", "\\zeta"},
	{"η", "\\eta"}, {"θ", "\\theta"}, {"ι", "\\iota"},
	{"κ", "\\kappa"}, {"λ", "\\lambda"}, {"μ", "\\mu"},
	{"ν", "\\nu"}, {"ξ", "\\xi"}, {"ο", "\\omicron"},
	{"π", "\\pi"}, {"ρ", "\\rho"}, {"σ", "\\sigma"},
	{"τ", "\\tau"}, {"υ", "\\upsilon"}, {"ϕ", "\\phi"},
	{"χ", "\\chi"}, {"ψ", "\\psi"}, {"ω", "\\omega"},
	{"ε", "\\varepsilon"}, {"ϑ", "\\vartheta"}, {"ϖ", "\\varpi"},
	{"ϱ", "\\varrho"}, {"ς", "\\varsigma"}, {"φ", "\\varphi"},
	{"ı", "\\imath"}, {"ȷ", "\\jmath"}, {"£", "\\pounds"},
	{"£", "\\mathsterling"},
}}

var mathAMS = []symgroup{
	{AMS, Rel, true, []symdef{
		{"⩽", "\\leqslant"}, {"⩾", "\\geqslant"}, {"≦", "\\leqq"},
		{"≧", "\\geqq"}, {"≲", "\\lesssim"}, {"≳", "\\gtrsim"},
		{"≊", "\\approxeq"}, {"⊲", "\\vartriangleleft"},
		{"⊳", "\\vartriangleright"}, {"∴", "\\therefore"},
		{"∵", "\\because"}, {"↠", "\\twoheadrightarrow"},
		{"⊩", "\\Vdash"}, {"≁", "\\nsim"}, {"≰", "\\nleq"},
		{"≱", "\\ngeq"}, {"⊊", "\\subsetneq"}, {"⊋", "\\supsetneq"},
	}},
	{AMS, Bin, true, []symdef{
		{"∔", "\\dotplus"}, {"⋉", "\\ltimes"}, {"⋊", "\\rtimes"},
		{"⊞", "\\boxplus"}, {"⊟", "\\boxminus"}, {"⊠", "\\boxtimes"},
		{"⊡", "\\boxdot"}, {"⊺", "\\intercal"}, {"⋒", "\\Cap"},
		{"⋓", "\\Cup"},
	}},
	{AMS, TextOrd, true, []symdef{
		{"∅", "\\varnothing"}, {"∁", "\\complement"}, {"∄", "\\nexists"},
		{"℧", "\\mho"}, {"Ⅎ", "\\Finv"}, {"⅁", "\\Game"},
		{"ℶ", "\\beth"}, {"ℷ", "\\gimel"}, {"ℸ", "\\daleth"},
		{"□", "\\square"}, {"■", "\\blacksquare"}, {"★", "\\bigstar"},
		{"∠", "\\measuredangle"}, {"✓", "\\checkmark"}, {"‵", "\\backprime"},
		{"ℏ", "\\hslash"}, {"ð", "\\eth"},
	}},
	{AMS, MathOrd, false, []symdef{
		{"ϝ", "\\digamma"}, {"ϰ", "\\varkappa"},
	}},
}

// spacing symbols are defined for both modes
var spacingSymbols = []symdef{
	{" ", "\\ "}, {" ", " "}, {" ", "~"}, {" ", "\\space"},
	{" ", "\\nobreakspace"},
}

var textSymbols = symgroup{Main, TextOrd, false, []symdef{
	{"{", "\\{"}, {"{", "\\textbraceleft"}, {"}", "\\}"}, {"}", "\\textbraceright"},
	{"$", "\\$"}, {"$", "\\textdollar"}, {"%", "\\%"}, {"_", "\\_"},
	{"_", "\\textunderscore"}, {"–", "--"}, {"–", "\\textendash"},
	{"—", "---"}, {"—", "\\textemdash"}, {"‘", "`"},
	{"‘", "\\textquoteleft"}, {"’", "'"}, {"’", "\\textquoteright"},
	{"“", "``"}, {"“", "\\textquotedblleft"}, {"”", "''"},
	{"”", "\\textquotedblright"}, {"…", "\\textellipsis"},
	{"…", "\\ldots"}, {"†", "\\dag"}, {"†", "\\textdagger"},
	{"‡", "\\ddag"}, {"‡", "\\textdaggerdbl"}, {"§", "\\S"},
	{"¶", "\\P"}, {"£", "\\pounds"}, {"£", "\\textsterling"},
	{"ı", "\\i"}, {"ȷ", "\\j"}, {"ß", "\\ss"}, {"æ", "\\ae"},
	{"œ", "\\oe"}, {"ø", "\\o"}, {"Æ", "\\AE"}, {"Œ", "\\OE"},
	{"Ø", "\\O"}, {"•", "\\textbullet"}, {"|", "\\textbar"},
	{"<", "\\textless"}, {">", "\\textgreater"},
}}

const mathTextSymbols = "0123456789/@.\""
const asciiPunctuation = "!\"#&'()*+,-./:;=?@[]`|"
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const extraLatin = "ÇÐÞçþ"

func defineGroup(t *Table, mode Mode, g symgroup) {
	for _, d := range g.defs {
		t.Define(mode, g.font, g.group, d.replace, d.name, g.accept)
	}
}

// DefineAll populates a table with the predefined symbols.
func DefineAll(t *Table) {
	defineGroup(t, Math, mathRelations)
	defineGroup(t, Math, mathBinaries)
	defineGroup(t, Math, mathOpenings)
	defineGroup(t, Math, mathClosings)
	defineGroup(t, Math, mathPunctuation)
	defineGroup(t, Math, mathInner)
	defineGroup(t, Math, mathOperators)
	defineGroup(t, Math, mathAccents)
	defineGroup(t, Math, mathOrdinaries)
	defineGroup(t, Math, mathDelimiterOrds)
	defineGroup(t, Math, mathGreek)
	for _, g := range mathAMS {
		defineGroup(t, Math, g)
	}
	for _, s := range spacingSymbols {
		t.Define(Math, Main, Spacing, s.replace, s.name, false)
		t.Define(Text, Main, Spacing, s.replace, s.name, false)
	}
	for _, ch := range mathTextSymbols {
		t.Define(Math, Main, TextOrd, string(ch), string(ch), false)
	}
	for _, ch := range asciiPunctuation {
		t.Define(Text, Main, TextOrd, string(ch), string(ch), false)
	}
	for _, ch := range "0123456789" {
		t.Define(Text, Main, TextOrd, string(ch), string(ch), false)
	}
	for _, ch := range letters {
		t.Define(Math, Main, MathOrd, string(ch), string(ch), false)
		t.Define(Text, Main, TextOrd, string(ch), string(ch), false)
	}
	for _, ch := range extraLatin {
		t.Define(Math, Main, MathOrd, string(ch), string(ch), false)
		t.Define(Text, Main, TextOrd, string(ch), string(ch), false)
	}
	defineGroup(t, Text, textSymbols)
}
