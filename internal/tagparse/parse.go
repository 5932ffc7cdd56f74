package tagparse

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// position orders the grammar states after the language subtag. A
// subtag classified below the current expectation is out of place.
type position uint8

const (
	posExtlang position = iota
	posScript
	posTerritory
	posVariant
	posExtension
	posEnd
)

var positionNames = [...]string{
	posExtlang:   "extlang",
	posScript:    "script",
	posTerritory: "territory",
	posVariant:   "variant",
	posExtension: "extension",
	posEnd:       "end of string",
}

// grandfathered lists the complete tags inherited from RFC 3066 that
// must not go through the regular grammar: the irregular ones do not
// fit it at all, and the regular ones would parse into nonsense.
// Lowercased for case-insensitive matching.
var grandfathered = map[string]bool{
	// Irregular.
	"en-gb-oed": true, "i-ami": true, "i-bnn": true, "i-default": true,
	"i-enochian": true, "i-hak": true, "i-klingon": true, "i-lux": true,
	"i-mingo": true, "i-navajo": true, "i-pwn": true, "i-tao": true,
	"i-tay": true, "i-tsu": true, "sgn-be-fr": true, "sgn-be-nl": true,
	"sgn-ch-de": true,

	// Regular.
	"art-lojban": true, "cel-gaulish": true, "no-bok": true, "no-nyn": true,
	"zh-guoyu": true, "zh-hakka": true, "zh-min": true, "zh-min-nan": true,
	"zh-xiang": true,
}

// NormalizeChars smashes a tag into lowercase with hyphen separators.
// BCP 47 is case-insensitive and treats underscores as hyphens, so
// everything downstream compares the normalized form.
func NormalizeChars(tag string) string {
	return strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
}

// Parse splits a tag into typed subtags without consulting any
// registry. It returns *Error when a piece does not fit the grammar at
// its position.
func Parse(tag string) ([]Subtag, error) {
	norm := NormalizeChars(tag)
	if grandfathered[norm] {
		return []Subtag{{Kind: KindGrandfathered, Value: norm}}, nil
	}

	p := &parser{parts: strings.Split(norm, "-")}
	p.offsets = make([]uint32, len(p.parts))
	off := 0
	for i, part := range p.parts {
		p.offsets[i] = u32(off)
		off += len(part) + 1
	}

	first := p.parts[0]
	switch {
	case first == "x":
		// A tag can be nothing but a private-use block.
		if err := p.parseSingleton(); err != nil {
			return nil, err
		}
		return p.out, nil
	case len(first) >= 2 && len(first) <= 8 && isAlphaStr(first):
		p.emit(KindLanguage, first, p.offsets[0])
		p.idx = 1
	default:
		return nil, subtagError(first, 0, "a language code")
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

type parser struct {
	parts   []string
	offsets []uint32
	idx     int
	out     []Subtag
	expect  position

	singletons map[string]bool
	variants   map[string]bool
}

func (p *parser) emit(kind Kind, value string, offset uint32) {
	p.out = append(p.out, Subtag{Kind: kind, Value: value, Offset: offset})
}

// run classifies everything after the language subtag by shape, then
// checks the position ordering.
func (p *parser) run() error {
	for p.idx < len(p.parts) {
		part := p.parts[p.idx]
		offset := p.offsets[p.idx]
		n := len(part)

		if n == 0 || n > 8 {
			return subtagError(part, offset, "a subtag of 1-8 characters")
		}
		if n == 1 {
			if err := p.parseSingleton(); err != nil {
				return err
			}
			continue
		}

		var got position
		switch {
		case n == 2 && isAlphaStr(part):
			got = posTerritory
		case n == 3 && isAlphaStr(part):
			if p.expect <= posExtlang {
				if err := p.parseExtlangs(); err != nil {
					return err
				}
				continue
			}
			return orderError(part, offset, posExtlang, p.expect)
		case n == 3 && isDigitStr(part):
			got = posTerritory
		case n == 4 && isAlphaStr(part):
			got = posScript
		case n == 4 && isDigit(part[0]) && isAlnumStr(part):
			got = posVariant
		case n >= 5 && isAlnumStr(part):
			got = posVariant
		default:
			return subtagError(part, offset, "a valid subtag")
		}

		if got < p.expect {
			return orderError(part, offset, got, p.expect)
		}

		switch got {
		case posScript:
			p.emit(KindScript, part, offset)
			p.expect = posTerritory
		case posTerritory:
			p.emit(KindTerritory, part, offset)
			p.expect = posVariant
		case posVariant:
			if p.variants[part] {
				return &Error{
					Subtag: part,
					Offset: offset,
					Msg:    fmt.Sprintf("duplicate variant subtag %q", part),
				}
			}
			if p.variants == nil {
				p.variants = make(map[string]bool)
			}
			p.variants[part] = true
			p.emit(KindVariant, part, offset)
			p.expect = posVariant
		}
		p.idx++
	}
	return nil
}

// parseExtlangs consumes up to three distinct 3-letter subtags right
// after the language code.
func (p *parser) parseExtlangs() error {
	var seen [3]string
	count := 0
	for p.idx < len(p.parts) && count < 3 {
		part := p.parts[p.idx]
		if len(part) != 3 || !isAlphaStr(part) {
			break
		}
		for _, prev := range seen[:count] {
			if prev == part {
				return &Error{
					Subtag: part,
					Offset: p.offsets[p.idx],
					Msg:    fmt.Sprintf("duplicate extlang subtag %q", part),
				}
			}
		}
		seen[count] = part
		count++
		p.emit(KindExtlang, part, p.offsets[p.idx])
		p.idx++
	}
	p.expect = posScript
	return nil
}

// parseSingleton consumes an extension block ("u" plus payload) or,
// for the "x" singleton, the private-use block spanning the rest of
// the tag.
func (p *parser) parseSingleton() error {
	subtag := p.parts[p.idx]
	offset := p.offsets[p.idx]
	if p.idx == len(p.parts)-1 {
		return &Error{
			Subtag: subtag,
			Offset: offset,
			Msg:    fmt.Sprintf("the subtag %q must be followed by something", subtag),
		}
	}

	if subtag == "x" {
		rest := p.parts[p.idx:]
		for i, part := range rest[1:] {
			if len(part) == 0 || !isAlnumStr(part) {
				return subtagError(part, p.offsets[p.idx+1+i], "a private-use subtag")
			}
		}
		p.emit(KindPrivate, strings.Join(rest, "-"), offset)
		p.idx = len(p.parts)
		return nil
	}

	if p.singletons[subtag] {
		return &Error{
			Subtag: subtag,
			Offset: offset,
			Msg:    fmt.Sprintf("duplicate extension singleton %q", subtag),
		}
	}
	if p.singletons == nil {
		p.singletons = make(map[string]bool)
	}
	p.singletons[subtag] = true

	// The payload runs until the next singleton.
	boundary := p.idx + 1
	for boundary < len(p.parts) && len(p.parts[boundary]) != 1 {
		part := p.parts[boundary]
		if len(part) == 0 || !isAlnumStr(part) {
			return subtagError(part, p.offsets[boundary], "an extension subtag")
		}
		boundary++
	}
	if boundary == p.idx+1 {
		return &Error{
			Subtag: subtag,
			Offset: offset,
			Msg:    fmt.Sprintf("the subtag %q must be followed by something", subtag),
		}
	}

	p.emit(KindExtension, strings.Join(p.parts[p.idx:boundary], "-"), offset)
	p.idx = boundary
	p.expect = posExtension
	return nil
}

func isAlpha(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlphaStr(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

func isDigitStr(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAlnumStr(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func u32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("subtag offset overflow: %w", err))
	}
	return v
}
