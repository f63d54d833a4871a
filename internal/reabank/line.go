package reabank

// Line is a line that matched one of the shapes, split into its parts.
type Line struct {
	Shape        Shape
	LSB          string
	Articulation string

	suffix string
	eol    string
}

// Match classifies line against the shape. A mismatch is not an error; most
// lines of a Reabank file (headers, bank declarations, comments, blank lines)
// match neither shape.
func (s Shape) Match(line string) (Line, bool) {
	if line == "" {
		return Line{}, false
	}
	m := s.regex().FindStringSubmatch(line)
	if m == nil {
		return Line{}, false
	}
	return Line{
		Shape:        s,
		LSB:          m[1],
		Articulation: m[2],
		suffix:       m[3],
		eol:          m[4],
	}, true
}

// Suffix returns the optional " - ..." note that followed the articulation.
func (l Line) Suffix() string {
	return l.suffix
}

// Rebuild returns the full line text with lsb in place of the original LSB.
// Rebuild(l.LSB) reproduces the matched line exactly.
func (l Line) Rebuild(lsb string) string {
	return l.Shape.prefix() + lsb + " " + l.Articulation + l.suffix + l.eol
}

// Parse calls fn with the parts of line if it matches the shape. rebuild maps
// a replacement LSB to the updated line.
func (s Shape) Parse(line string, fn func(lsb, articulation string, rebuild func(lsb string) string)) {
	l, ok := s.Match(line)
	if !ok {
		return
	}
	fn(l.LSB, l.Articulation, l.Rebuild)
}

// Update replaces the LSB of a matching line with the updater's return value.
// Lines that do not match are returned unchanged and the updater is not called.
func (s Shape) Update(line string, updater func(lsb, articulation string) string) string {
	l, ok := s.Match(line)
	if !ok {
		return line
	}
	return l.Rebuild(updater(l.LSB, l.Articulation))
}

// ParseDefinition is Definition.Parse.
func ParseDefinition(line string, fn func(lsb, articulation string, rebuild func(lsb string) string)) {
	Definition.Parse(line, fn)
}

// ParseArticulation is Articulation.Parse.
func ParseArticulation(line string, fn func(lsb, articulation string, rebuild func(lsb string) string)) {
	Articulation.Parse(line, fn)
}

// UpdateDefinition is Definition.Update.
func UpdateDefinition(line string, updater func(lsb, articulation string) string) string {
	return Definition.Update(line, updater)
}

// UpdateArticulation is Articulation.Update.
func UpdateArticulation(line string, updater func(lsb, articulation string) string) string {
	return Articulation.Update(line, updater)
}
