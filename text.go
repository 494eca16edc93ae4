package cssval

// Text property value grammars, per CSS Text Level 3 and CSS Text
// Decoration Level 4. Each grammar is a static slot table over the generic
// combinators; the table order is the declared tie-break priority and the
// canonical emission order.

// Case keywords for text-transform.
const (
	TransformNone       = Keyword("none")
	TransformUppercase  = Keyword("uppercase")
	TransformLowercase  = Keyword("lowercase")
	TransformCapitalize = Keyword("capitalize")
)

// TextTransformCase is the case-conversion component of text-transform.
var TextTransformCase = NewKeywordSet("text-transform case", "none",
	"none", "uppercase", "lowercase", "capitalize")

// Flag bits for text-transform's non-case behaviors.
const (
	FullWidth uint8 = 1 << iota
	FullSizeKana
)

// TextTransformOther is the writing-system component of text-transform.
var TextTransformOther = NewFlagSet("text-transform other", "",
	Flag{Name: "full-width", Bit: FullWidth},
	Flag{Name: "full-size-kana", Bit: FullSizeKana},
)

// TextTransform is the text-transform value grammar. Selecting "none"
// terminates the parse: it discards any flags already matched and no flag
// may follow it.
var TextTransform = NewGrammar("text-transform",
	Slot{Name: "case", Comp: TextTransformCase, Mode: PrintIfAlone,
		Stop: func(v Value) bool { return v.Equal(TransformNone) }},
	Slot{Name: "other", Comp: TextTransformOther},
)

// Flag bits for text-decoration-line.
const (
	Underline uint8 = 1 << iota
	Overline
	LineThrough
	Blink
	SpellingError
	GrammarError
)

// TextDecorationLine is the text-decoration-line flag set. spelling-error
// and grammar-error are error-class values: they only match while the set
// is still empty and, once present, foreclose and suppress every other
// member.
var TextDecorationLine = NewFlagSet("text-decoration-line", "none",
	Flag{Name: "none", When: WhenEmpty},
	Flag{Name: "underline", Bit: Underline},
	Flag{Name: "overline", Bit: Overline},
	Flag{Name: "line-through", Bit: LineThrough},
	Flag{Name: "blink", Bit: Blink},
	Flag{Name: "spelling-error", Bit: SpellingError, Exclusive: true, When: WhenEmpty},
	Flag{Name: "grammar-error", Bit: GrammarError, Exclusive: true, When: WhenEmpty},
)

// TextDecorationStyle is the text-decoration-style keyword set.
var TextDecorationStyle = NewKeywordSet("text-decoration-style", "solid",
	"solid", "double", "dotted", "dashed", "wavy")

// TextDecorationThickness parses auto | from-font | <length-percentage>.
var TextDecorationThickness = NewOneOf("text-decoration-thickness",
	Keyword("auto"),
	NewKeywordSet("text-decoration-thickness keyword", "auto", "auto", "from-font"),
	ParseFunc{Func: ParseLengthPercentage, Def: Length{}},
)

// TextDecoration is the text-decoration shorthand grammar:
// line || thickness || style || color, in any input order. An error-class
// line value is terminal: the remaining components are discarded on parse
// and suppressed on print.
var TextDecoration = NewGrammar("text-decoration",
	Slot{Name: "line", Comp: TextDecorationLine, Mode: PrintAlways,
		Stop: func(v Value) bool {
			f := v.(Flags)
			return f.Has(SpellingError) || f.Has(GrammarError)
		}},
	Slot{Name: "thickness", Comp: TextDecorationThickness},
	Slot{Name: "style", Comp: TextDecorationStyle},
	Slot{Name: "color", Comp: ParseFunc{Func: ParseColor, Def: CurrentColor}},
)

// Flag bits for text-indent.
const (
	Hanging uint8 = 1 << iota
	EachLine
)

// TextIndentFlags is the hanging / each-line component of text-indent.
var TextIndentFlags = NewFlagSet("text-indent flags", "",
	Flag{Name: "hanging", Bit: Hanging},
	Flag{Name: "each-line", Bit: EachLine},
)

// TextIndent is the text-indent value grammar. The length-percentage is
// required; the flags may precede or follow it.
var TextIndent = NewGrammar("text-indent",
	Slot{Name: "value", Comp: ParseFunc{Func: ParseLengthPercentage, Def: Length{}},
		Required: true, Mode: PrintAlways},
	Slot{Name: "flags", Comp: TextIndentFlags},
)

// Spacing is the word-spacing and letter-spacing grammar:
// normal | <length>.
var Spacing = NewOneOf("spacing",
	Keyword("normal"),
	NewKeywordSet("spacing keyword", "normal", "normal"),
	ParseFunc{Func: ParseLength, Def: Length{}},
)

// Single-keyword text properties.
var (
	WhiteSpace = NewKeywordSet("white-space", "normal",
		"normal", "pre", "nowrap", "pre-wrap", "break-spaces", "pre-line")

	WordBreak = NewKeywordSet("word-break", "normal",
		"normal", "keep-all", "break-all", "break-word")

	LineBreak = NewKeywordSet("line-break", "auto",
		"auto", "loose", "normal", "strict", "anywhere")

	Hyphens = NewKeywordSet("hyphens", "manual",
		"none", "manual", "auto")

	OverflowWrap = NewKeywordSet("overflow-wrap", "normal",
		"normal", "break-word", "anywhere")

	TextAlign = NewKeywordSet("text-align", "start",
		"start", "end", "left", "right", "center", "justify",
		"match-parent", "justify-all")

	TextAlignLast = NewKeywordSet("text-align-last", "auto",
		"auto", "start", "end", "left", "right", "center", "justify",
		"match-parent")

	TextJustify = NewKeywordSet("text-justify", "auto",
		"auto", "none", "inter-word", "inter-character")
)
