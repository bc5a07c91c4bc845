package lexer

import "fmt"

// Kind is the category of a token.
type Kind int8

// Token categories
const (
	Whitespace Kind = iota
	Ident           // bare word or quoted string
	Script          // <? … ?>
	Callback        // <{ N }>
	LCurly          // {
	RCurly          // }
	Colon           // :
	SemiColon       // ;
	Asterisk        // *
	Not             // !
	Caret           // ^
	Comma           // ,
	Ampersand       // &
)

var kindNames = [...]string{
	Whitespace: "whitespace",
	Ident:      "identifier",
	Script:     "script",
	Callback:   "callback",
	LCurly:     "'{'",
	RCurly:     "'}'",
	Colon:      "':'",
	SemiColon:  "';'",
	Asterisk:   "'*'",
	Not:        "'!'",
	Caret:      "'^'",
	Comma:      "','",
	Ampersand:  "'&'",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexical unit of a stylesheet. Tokens are values and are never
// changed after the lexer produced them.
//
// Value holds the identifier text (quotes removed and doubled quotes
// collapsed), the verbatim script text, or the decimal text of a callback.
// Callback tokens additionally carry their numeric index in Index.
type Token struct {
	Kind   Kind
	Value  string
	Index  int  // callback index, valid for Kind == Callback
	Quoted bool // identifier was given as a quoted string
	Line   int  // 1-based
	Column int  // 1-based
}

// IsSelectorStart is true for tokens which may start an element selector.
func (t Token) IsSelectorStart() bool {
	switch t.Kind {
	case Not, Asterisk, Ampersand, Ident, Script, Callback:
		return true
	}
	return false
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		if t.Quoted {
			return fmt.Sprintf("%d:%d:string(%q)", t.Line, t.Column, t.Value)
		}
		return fmt.Sprintf("%d:%d:ident(%s)", t.Line, t.Column, t.Value)
	case Script:
		return fmt.Sprintf("%d:%d:script(%q)", t.Line, t.Column, t.Value)
	case Callback:
		return fmt.Sprintf("%d:%d:callback(%d)", t.Line, t.Column, t.Index)
	}
	return fmt.Sprintf("%d:%d:%s", t.Line, t.Column, t.Kind)
}
