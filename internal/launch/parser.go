package launch

import (
	"errors"

	"github.com/papapumpkin/launchplot/internal/orbit"
	"github.com/papapumpkin/launchplot/internal/record"
)

// Parser turns launch-log text into a Collection.
type Parser struct {
	// Calc evaluates orbit energy. A nil Calc uses the default constants.
	Calc *orbit.Calculator

	// Window drops records whose time lies outside it.
	Window Window
}

// ParseText tokenizes and resolves text, labelled source in errors and
// warnings. Any malformed block or unparseable timestamp aborts the whole
// text with a *SourceError.
func (p *Parser) ParseText(source, text string) (*Collection, []Warning, error) {
	calc := p.Calc
	if calc == nil {
		calc = orbit.NewCalculator(orbit.DefaultConstants())
	}

	blocks, err := record.Tokenize(text)
	if err != nil {
		var be *record.BlockError
		if errors.As(err, &be) {
			return nil, nil, &SourceError{Source: source, Block: be.Block, Err: err}
		}
		return nil, nil, &SourceError{Source: source, Err: err}
	}

	c := NewCollection()
	var warnings []Warning
	for _, b := range blocks {
		r, ws, err := Resolve(b, calc)
		if err != nil {
			return nil, nil, &SourceError{Source: source, Block: b.Text, Err: err}
		}
		if !p.Window.Contains(r.Time) {
			continue
		}
		for _, w := range ws {
			w.Source = source
			warnings = append(warnings, w)
		}
		c.Append(r, b)
	}
	return c, warnings, nil
}
