package mathtext

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no notation", input: "plain text stays intact", want: "plain text stays intact"},
		{name: "empty", input: "", want: ""},
		{name: "greek lowercase", input: `\alpha + \beta = \gamma`, want: "α + β = γ"},
		{name: "greek uppercase ascii fallback", input: `\Sigma and \Omega`, want: "Sigma and Omega"},
		{name: "operators", input: `a \times b \div c`, want: "a × b ÷ c"},
		{name: "relations", input: `x \leq y \neq z`, want: "x ≤ y ≠ z"},
		{name: "arrows", input: `f: A \to B`, want: "f: A -> B"},
		{name: "big operator with scripts", input: `\sum_{i=0}^{n}`, want: "SUMᵢ₌₀ⁿ"},
		{name: "integral", input: `\int f(x) dx`, want: "INT f(x) dx"},
		{name: "vulgar fraction", input: `\frac12 cup`, want: "½ cup"},
		{name: "square root", input: `\sqrt 2`, want: "√ 2"},
		{name: "infinity", input: `x \to \infty`, want: "x -> inf"},
		{name: "spacing commands", input: `a\,b\quad c`, want: "a b  c"},
		{name: "unknown command kept", input: `\mathbb{R}`, want: `\mathbb{R}`},
		{name: "lone backslash kept", input: `a \ b`, want: `a \ b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_Superscripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single digit", input: "x^2", want: "x²"},
		{name: "braced digits", input: "x^{10}", want: "x¹⁰"},
		{name: "sign in group", input: "e^{-1}", want: "e⁻¹"},
		{name: "letter n", input: "2^n", want: "2ⁿ"},
		{name: "unconvertible group parenthesized", input: "x^{ab}", want: "x(ab)"},
		{name: "unconvertible single parenthesized", input: "x^z", want: "x(z)"},
		{name: "trailing caret kept", input: "x^", want: "x^"},
		{name: "unclosed brace kept", input: "x^{12", want: "x^{12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_Subscripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "chemical formula", input: "H_2O", want: "H₂O"},
		{name: "braced digits", input: "x_{12}", want: "x₁₂"},
		{name: "letter index", input: "a_n", want: "aₙ"},
		{name: "unconvertible parenthesized", input: "x_q", want: "x(q)"},
		{name: "trailing underscore kept", input: "x_", want: "x_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRender_MixedProse(t *testing.T) {
	input := `The area is \pi r^2 and the sum \sum_{k=1}^{n} k grows as n^2/2.`
	want := "The area is π r² and the sum SUMₖ₌₁ⁿ k grows as n²/2."

	if got := Render(input); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
