package recipefile

import (
	"fmt"

	"github.com/example/anvil/internal/models"
	"github.com/example/anvil/internal/ports/secondary"
)

// parse turns a payload into entries plus the snapshot. The grammar is
// fixed:
//
//	file     = recipes [lastdir] [lastcmd]
//	recipes  = "(" "recipes" entry* ")"
//	entry    = "(" key STRING [CHAR] ")"
//	key      = "(" STRING "." STRING ")"
//	lastdir  = "(" "last-directory" "." STRING ")"
//	lastcmd  = "(" "last-command" "." STRING ")"
//
// An entry without the CHAR is the legacy pre-shortcut shape and is
// upgraded in place to shortcut none. Anything outside this grammar is
// rejected.
func parse(data string) (*secondary.LoadResult, error) {
	tokens, err := lex(data)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}

	res := &secondary.LoadResult{}
	if err := p.parseRecipes(res); err != nil {
		return nil, err
	}
	if dir, ok, err := p.parseSnapshotField("last-directory"); err != nil {
		return nil, err
	} else if ok {
		res.LastDir = dir
	}
	if cmd, ok, err := p.parseSnapshotField("last-command"); err != nil {
		return nil, err
	} else if ok {
		res.LastCommand = cmd
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("line %d: trailing content: unexpected %s", tok.line, tok.describe())
	}
	return res, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.next()
	if tok.kind != kind {
		return token{}, fmt.Errorf("line %d: expected %s, found %s", tok.line, what, tok.describe())
	}
	return tok, nil
}

func (p *parser) parseRecipes(res *secondary.LoadResult) error {
	if _, err := p.expect(tokLParen, `"("`); err != nil {
		return err
	}
	sym, err := p.expect(tokSymbol, `"recipes"`)
	if err != nil {
		return err
	}
	if sym.text != "recipes" {
		return fmt.Errorf("line %d: expected \"recipes\", found symbol %q", sym.line, sym.text)
	}
	for p.peek().kind == tokLParen {
		entry, err := p.parseEntry()
		if err != nil {
			return err
		}
		res.Entries = append(res.Entries, entry)
	}
	_, err = p.expect(tokRParen, `")"`)
	return err
}

func (p *parser) parseEntry() (models.Recipe, error) {
	var r models.Recipe
	if _, err := p.expect(tokLParen, `"("`); err != nil {
		return r, err
	}

	key, err := p.parseKey()
	if err != nil {
		return r, err
	}
	r.Key = key

	name, err := p.expect(tokString, "recipe name")
	if err != nil {
		return r, err
	}
	r.Name = name.text

	// Legacy entries stop after the name; current ones carry a shortcut.
	if p.peek().kind == tokChar {
		r.Shortcut = p.next().char
	}

	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return r, err
	}
	return r, nil
}

func (p *parser) parseKey() (models.RecipeKey, error) {
	var key models.RecipeKey
	if _, err := p.expect(tokLParen, `"("`); err != nil {
		return key, err
	}
	dir, err := p.expect(tokString, "directory")
	if err != nil {
		return key, err
	}
	if _, err := p.expect(tokDot, `"."`); err != nil {
		return key, err
	}
	command, err := p.expect(tokString, "command")
	if err != nil {
		return key, err
	}
	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return key, err
	}
	key.Dir = dir.text
	key.Command = command.text
	return key, nil
}

// parseSnapshotField consumes one optional "(name . STRING)" form.
func (p *parser) parseSnapshotField(name string) (string, bool, error) {
	if p.peek().kind != tokLParen {
		return "", false, nil
	}
	// Look ahead for the field symbol before committing: the caller
	// probes fields in order and a mismatch just means this field is
	// absent.
	if p.tokens[p.pos+1].kind != tokSymbol || p.tokens[p.pos+1].text != name {
		return "", false, nil
	}
	p.next() // (
	p.next() // symbol
	if _, err := p.expect(tokDot, `"."`); err != nil {
		return "", false, err
	}
	value, err := p.expect(tokString, "value")
	if err != nil {
		return "", false, err
	}
	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return "", false, err
	}
	return value.text, true, nil
}
