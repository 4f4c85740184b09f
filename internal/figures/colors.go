package figures

// fillerColor is reserved for the derived filler trace in stacked figures.
const fillerColor = "DarkGray"

// assignColors maps nGroups logical groups onto the theme's color cycle:
// a prefix when the cycle is long enough, a round-robin repeat otherwise.
// multiplier is how many traces share one logical color slot (max and sum
// bars per station, or one trace per period per station); the base list is
// repeated that many times so colors line up positionally with the flattened
// trace list.
func (b *Builder) assignColors(nGroups, multiplier int) []string {
	colorway := b.theme.Colorway

	base := make([]string, nGroups)
	if nGroups < len(colorway) {
		copy(base, colorway[:nGroups])
	} else {
		for i := range base {
			base[i] = colorway[i%len(colorway)]
		}
	}

	out := make([]string, 0, nGroups*multiplier)
	for i := 0; i < multiplier; i++ {
		out = append(out, base...)
	}
	return out
}

// stackedPalette is the fixed per-row palette for stacked rain/dry figures:
// the first two theme colors for the real metrics plus DarkGray for the
// filler trace. This is an override, not an instance of the cycling rule.
func (b *Builder) stackedPalette(rows int) []string {
	palette := []string{b.theme.Color(0), b.theme.Color(1), fillerColor}

	out := make([]string, 0, len(palette)*rows)
	for i := 0; i < rows; i++ {
		out = append(out, palette...)
	}
	return out
}
