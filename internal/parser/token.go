package parser

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokEOF TokKind = iota

	// Literals/identifiers
	TokIdent
	TokNumber
	TokString

	// Keywords
	TokVar
	TokLet
	TokConst
	TokFunction
	TokClass
	TokType
	TokReturn
	TokIf
	TokElse
	TokTrue
	TokFalse
	TokNull

	// Operators/punctuation
	TokAssign   // =
	TokEq       // ==
	TokStrictEq // ===
	TokNe       // !=
	TokStrictNe // !==
	TokPlus     // +
	TokMinus    // -
	TokStar     // *
	TokSlash    // /
	TokPercent  // %
	TokLt       // <
	TokLe       // <=
	TokGt       // >
	TokGe       // >=
	TokAndAnd   // &&
	TokOrOr     // ||
	TokBang     // !
	TokDot      // .
	TokComma    // ,
	TokSemi     // ;
	TokColon    // :
	TokLParen   // (
	TokRParen   // )
	TokLBrack   // [
	TokRBrack   // ]
	TokLBrace   // {
	TokRBrace   // }
)

// Token is a single lexeme with its source position.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}

var keywords = map[string]TokKind{
	"var":      TokVar,
	"let":      TokLet,
	"const":    TokConst,
	"function": TokFunction,
	"class":    TokClass,
	"type":     TokType,
	"return":   TokReturn,
	"if":       TokIf,
	"else":     TokElse,
	"true":     TokTrue,
	"false":    TokFalse,
	"null":     TokNull,
}

var kindNames = map[TokKind]string{
	TokEOF:      "end of input",
	TokIdent:    "identifier",
	TokNumber:   "number",
	TokString:   "string",
	TokVar:      "'var'",
	TokLet:      "'let'",
	TokConst:    "'const'",
	TokFunction: "'function'",
	TokClass:    "'class'",
	TokType:     "'type'",
	TokReturn:   "'return'",
	TokIf:       "'if'",
	TokElse:     "'else'",
	TokTrue:     "'true'",
	TokFalse:    "'false'",
	TokNull:     "'null'",
	TokAssign:   "'='",
	TokEq:       "'=='",
	TokStrictEq: "'==='",
	TokNe:       "'!='",
	TokStrictNe: "'!=='",
	TokPlus:     "'+'",
	TokMinus:    "'-'",
	TokStar:     "'*'",
	TokSlash:    "'/'",
	TokPercent:  "'%'",
	TokLt:       "'<'",
	TokLe:       "'<='",
	TokGt:       "'>'",
	TokGe:       "'>='",
	TokAndAnd:   "'&&'",
	TokOrOr:     "'||'",
	TokBang:     "'!'",
	TokDot:      "'.'",
	TokComma:    "','",
	TokSemi:     "';'",
	TokColon:    "':'",
	TokLParen:   "'('",
	TokRParen:   "')'",
	TokLBrack:   "'['",
	TokRBrack:   "']'",
	TokLBrace:   "'{'",
	TokRBrace:   "'}'",
}

// String returns a human-readable name for the token kind.
func (k TokKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown token"
}
