package stats

import "strings"

// Palette maps group labels to hex colors. Known labels keep a fixed color;
// any other label draws from Spare. Success and Failure color the bars of
// the status chart.
type Palette struct {
	Known   map[string]string
	Spare   []string
	Success string
	Failure string
}

// DefaultPalette returns Paul Tol's muted scheme keyed by manufacturer
// country, with the full ten-color scheme as spares.
func DefaultPalette() Palette {
	return Palette{
		Known: map[string]string{
			"中国":  "#CC6677", // rose
			"美国":  "#332288", // indigo
			"印度":  "#DDCC77", // sand
			"伊朗":  "#117733", // green
			"俄罗斯": "#88CCEE", // cyan
			"韩国":  "#882255", // wine
			"欧洲":  "#44AA99", // teal
			"日本":  "#808080", // grey
		},
		Spare: []string{
			"#CC6677", // rose
			"#332288", // indigo
			"#DDCC77", // sand
			"#117733", // green
			"#88CCEE", // cyan
			"#882255", // wine
			"#44AA99", // teal
			"#999933", // olive
			"#AA4499", // purple
			"#808080", // grey
		},
		Success: "#0077BB",
		Failure: "#CC3311",
	}
}

// Lookup returns the fixed color for label or its base name.
func (p Palette) Lookup(label string) (string, bool) {
	if c, ok := p.Known[label]; ok {
		return c, true
	}
	if base := baseName(label); base != label {
		c, ok := p.Known[base]
		return c, ok
	}
	return "", false
}

// Assign returns one color per entry of groups. Labels without a fixed
// color are served from Spare in the order given by firstSeen, skipping
// spare colors already taken by known labels; once every spare color is in
// use the cursor wraps round-robin.
func (p Palette) Assign(groups, firstSeen []string) []string {
	colors := make([]string, len(groups))
	pos := make(map[string]int, len(groups))
	used := make(map[string]bool)
	for i, g := range groups {
		pos[g] = i
		if c, ok := p.Lookup(g); ok {
			colors[i] = c
			used[c] = true
		}
	}
	if len(p.Spare) == 0 {
		return colors
	}

	cursor := 0
	for _, g := range firstSeen {
		i, ok := pos[g]
		if !ok || colors[i] != "" {
			continue
		}
		colors[i] = p.nextSpare(&cursor, used)
		used[colors[i]] = true
	}
	return colors
}

// nextSpare returns the next unused spare color from *cursor, or the color
// at *cursor when all are used.
func (p Palette) nextSpare(cursor *int, used map[string]bool) string {
	n := len(p.Spare)
	for k := 0; k < n; k++ {
		c := p.Spare[(*cursor+k)%n]
		if !used[c] {
			*cursor = (*cursor + k + 1) % n
			return c
		}
	}
	c := p.Spare[*cursor%n]
	*cursor = (*cursor + 1) % n
	return c
}

// baseName strips a trailing parenthetical qualifier, e.g. "中国(民营)".
func baseName(s string) string {
	if i := strings.IndexAny(s, "(（"); i > 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
