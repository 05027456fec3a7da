// Package mathtext substitutes LaTeX-style math notation with characters
// that render on the calculator's screen font. Symbols the font does not
// carry fall back to ASCII spellings.
package mathtext

import "strings"

// commands maps LaTeX commands to their replacements. Uppercase Greek and
// the big operators use ASCII because the calculator font does not render
// them reliably.
var commands = map[string]string{
	// Greek lowercase
	`\alpha`:      "α",
	`\beta`:       "β",
	`\gamma`:      "γ",
	`\delta`:      "δ",
	`\epsilon`:    "ε",
	`\varepsilon`: "ε",
	`\zeta`:       "ζ",
	`\eta`:        "η",
	`\theta`:      "θ",
	`\vartheta`:   "ϑ",
	`\iota`:       "ι",
	`\kappa`:      "κ",
	`\lambda`:     "λ",
	`\mu`:         "μ",
	`\nu`:         "ν",
	`\xi`:         "ξ",
	`\pi`:         "π",
	`\varpi`:      "ϖ",
	`\rho`:        "ρ",
	`\varrho`:     "ϱ",
	`\sigma`:      "σ",
	`\varsigma`:   "ς",
	`\tau`:        "τ",
	`\upsilon`:    "υ",
	`\phi`:        "φ",
	`\varphi`:     "ϕ",
	`\chi`:        "χ",
	`\psi`:        "ψ",
	`\omega`:      "ω",

	// Greek uppercase
	`\Gamma`:   "Gamma",
	`\Delta`:   "Delta",
	`\Theta`:   "Theta",
	`\Lambda`:  "Lambda",
	`\Xi`:      "Xi",
	`\Pi`:      "Pi",
	`\Sigma`:   "Sigma",
	`\Upsilon`: "Upsilon",
	`\Phi`:     "Phi",
	`\Psi`:     "Psi",
	`\Omega`:   "Omega",

	// Math operators
	`\times`:  "×",
	`\div`:    "÷",
	`\cdot`:   "·",
	`\pm`:     "±",
	`\mp`:     "∓",
	`\ast`:    "∗",
	`\star`:   "⋆",
	`\circ`:   "∘",
	`\bullet`: "•",

	// Relations
	`\leq`:      "≤",
	`\le`:       "≤",
	`\geq`:      "≥",
	`\ge`:       "≥",
	`\neq`:      "≠",
	`\ne`:       "≠",
	`\approx`:   "≈",
	`\equiv`:    "≡",
	`\sim`:      "∼",
	`\simeq`:    "≃",
	`\cong`:     "≅",
	`\propto`:   "∝",
	`\ll`:       "≪",
	`\gg`:       "≫",
	`\subset`:   "<",
	`\supset`:   ">",
	`\subseteq`: "<=",
	`\supseteq`: ">=",
	`\in`:       "in",
	`\notin`:    "not in",
	`\ni`:       "ni",
	`\perp`:     "_|_",
	`\parallel`: "||",

	// Arrows
	`\leftarrow`:      "<-",
	`\rightarrow`:     "->",
	`\to`:             "->",
	`\uparrow`:        "^",
	`\downarrow`:      "v",
	`\leftrightarrow`: "<->",
	`\Leftarrow`:      "<=",
	`\Rightarrow`:     "=>",
	`\implies`:        "=>",
	`\Leftrightarrow`: "<=>",
	`\iff`:            "<=>",
	`\mapsto`:         "|->",

	// Big operators
	`\sum`:       "SUM",
	`\prod`:      "PROD",
	`\coprod`:    "COPROD",
	`\int`:       "INT",
	`\oint`:      "OINT",
	`\iint`:      "IINT",
	`\iiint`:     "IIINT",
	`\bigcup`:    "UNION",
	`\bigcap`:    "INTERSECT",
	`\bigoplus`:  "OPLUS",
	`\bigotimes`: "OTIMES",

	// Misc symbols
	`\infty`:       "inf",
	`\partial`:     "d",
	`\nabla`:       "nabla",
	`\forall`:      "forall",
	`\exists`:      "exists",
	`\nexists`:     "!exists",
	`\emptyset`:    "{}",
	`\varnothing`:  "{}",
	`\neg`:         "NOT",
	`\lnot`:        "NOT",
	`\land`:        "AND",
	`\wedge`:       "AND",
	`\lor`:         "OR",
	`\vee`:         "OR",
	`\cap`:         "n",
	`\cup`:         "U",
	`\setminus`:    `\`,
	`\angle`:       "<",
	`\triangle`:    "^",
	`\square`:      "[]",
	`\diamond`:     "<>",
	`\clubsuit`:    "club",
	`\diamondsuit`: "diamond",
	`\heartsuit`:   "heart",
	`\spadesuit`:   "spade",
	`\aleph`:       "aleph",
	`\wp`:          "P",
	`\Re`:          "Re",
	`\Im`:          "Im",
	`\hbar`:        "hbar",
	`\ell`:         "l",
	`\prime`:       "'",
	`\degree`:      "deg",
	`\deg`:         "deg",

	// Roots and fractions
	`\sqrt`:   "√",
	`\cbrt`:   "∛",
	`\frac12`: "½",
	`\frac13`: "⅓",
	`\frac23`: "⅔",
	`\frac14`: "¼",
	`\frac34`: "¾",
	`\frac15`: "⅕",
	`\frac25`: "⅖",
	`\frac35`: "⅗",
	`\frac45`: "⅘",
	`\frac16`: "⅙",
	`\frac56`: "⅚",
	`\frac18`: "⅛",
	`\frac38`: "⅜",
	`\frac58`: "⅝",
	`\frac78`: "⅞",

	// Spacing and formatting
	`\,`:     " ",
	`\;`:     " ",
	`\:`:     " ",
	`\!`:     "",
	`\quad`:  "  ",
	`\qquad`: "    ",
	`\ldots`: "…",
	`\cdots`: "⋯",
	`\vdots`: "⋮",
	`\ddots`: "⋱",

	// Brackets
	`\langle`: "⟨",
	`\rangle`: "⟩",
	`\lceil`:  "⌈",
	`\rceil`:  "⌉",
	`\lfloor`: "⌊",
	`\rfloor`: "⌋",
	`\lvert`:  "|",
	`\rvert`:  "|",
	`\|`:      "‖",
	`\lVert`:  "‖",
	`\rVert`:  "‖",
}

// superscripts maps characters to their superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', 'x': 'ˣ', 'y': 'ʸ',
}

// subscripts maps characters to their subscript forms.
var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// Render substitutes LaTeX-style notation in input:
//   - commands per the commands table (\alpha, \times, \frac12, ...)
//   - superscripts: x^2 → x², x^{10} → x¹⁰
//   - subscripts: H_2O → H₂O, x_{12} → x₁₂
//
// Unknown commands and unconvertible scripts are left as plain text; a
// braced group with unconvertible characters renders parenthesized
// instead, since bare ^ and _ do not display at all.
func Render(input string) string {
	chars := []rune(input)
	var result strings.Builder
	result.Grow(len(input))

	i := 0
	for i < len(chars) {
		switch chars[i] {
		case '\\':
			if replacement, consumed, ok := matchCommand(chars, i); ok {
				result.WriteString(replacement)
				i += consumed
				continue
			}
		case '^':
			if converted, consumed, ok := convertScript(chars, i+1, superscripts); ok {
				result.WriteString(converted)
				i += 1 + consumed
				continue
			}
		case '_':
			if converted, consumed, ok := convertScript(chars, i+1, subscripts); ok {
				result.WriteString(converted)
				i += 1 + consumed
				continue
			}
		}

		result.WriteRune(chars[i])
		i++
	}

	return result.String()
}

// matchCommand tries to match a LaTeX command starting at the backslash.
// Returns the replacement and the number of runes consumed.
func matchCommand(chars []rune, start int) (string, int, bool) {
	var cmd strings.Builder
	i := start

	cmd.WriteRune(chars[i])
	i++

	for i < len(chars) && isASCIILetter(chars[i]) {
		cmd.WriteRune(chars[i])
		i++
	}

	// \frac followed by two digits is a single vulgar-fraction command
	if cmd.String() == `\frac` && i+1 < len(chars) {
		fracCmd := `\frac` + string(chars[i]) + string(chars[i+1])
		if replacement, ok := commands[fracCmd]; ok {
			return replacement, i + 2 - start, true
		}
	}

	if replacement, ok := commands[cmd.String()]; ok {
		return replacement, i - start, true
	}

	// single-character commands like \, \; \: \! \|
	if start+1 < len(chars) {
		special := string(chars[start : start+2])
		if replacement, ok := commands[special]; ok {
			return replacement, 2, true
		}
	}

	return "", 0, false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// convertScript converts the characters after ^ or _ using the given map.
// A braced group converts as a whole; if any character has no script form,
// the whole group renders parenthesized instead.
func convertScript(chars []rune, start int, table map[rune]rune) (string, int, bool) {
	if start >= len(chars) {
		return "", 0, false
	}

	var converted strings.Builder
	var original strings.Builder
	allConverted := true
	var consumed int

	if chars[start] == '{' {
		i := start + 1
		for i < len(chars) && chars[i] != '}' {
			original.WriteRune(chars[i])
			if c, ok := table[chars[i]]; ok {
				converted.WriteRune(c)
			} else {
				allConverted = false
				converted.WriteRune(chars[i])
			}
			i++
		}
		if i >= len(chars) || chars[i] != '}' {
			return "", 0, false // unclosed brace
		}
		consumed = i - start + 1
	} else {
		original.WriteRune(chars[start])
		if c, ok := table[chars[start]]; ok {
			converted.WriteRune(c)
		} else {
			allConverted = false
			converted.WriteRune(chars[start])
		}
		consumed = 1
	}

	if converted.Len() == 0 {
		return "", 0, false
	}

	if !allConverted {
		return "(" + original.String() + ")", consumed, true
	}
	return converted.String(), consumed, true
}
