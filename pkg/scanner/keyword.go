package scanner

// Keyword is one word of the fixed GZ vocabulary.
type Keyword int

const (
	NONE   Keyword = iota
	SIMULA         // function definition
	SULAT          // print
	KUNG           // if
	PARA           // for loop
	HABANG         // while loop
	BALIK          // return
	TAMA           // boolean true literal
	MALI           // boolean false literal
	WALA           // null literal
)

var keywords = map[string]Keyword{
	"simula": SIMULA,
	"sulat":  SULAT,
	"kung":   KUNG,
	"para":   PARA,
	"habang": HABANG,
	"balik":  BALIK,
	"tama":   TAMA,
	"mali":   MALI,
	"wala":   WALA,
}

// Lookup resolves a word against the keyword table.
func Lookup(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

// IsLiteral reports whether the keyword names a value rather than a
// statement form.
func (k Keyword) IsLiteral() bool {
	switch k {
	case TAMA, MALI, WALA:
		return true
	default:
		return false
	}
}

// String returns the surface spelling of the keyword.
func (k Keyword) String() string {
	for word, kw := range keywords {
		if kw == k {
			return word
		}
	}

	return "none"
}
