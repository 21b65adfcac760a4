package gsm

// baseRunes is the default 7-bit repertoire, excluding the characters that
// are only reachable through the escape to the extension table.
var baseRunes = []rune{
	'\n', '\r', ' ',
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	':', ';', '<', '=', '>', '?', '@',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'_',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
	'¡', '£', '¤', '¥', '§', '¿',
	'Ä', 'Å', 'Æ', 'Ç', 'É', 'Ñ', 'Ö', 'Ø', 'Ü', 'ß',
	'à', 'ä', 'å', 'æ', 'è', 'é', 'ì', 'ñ', 'ò', 'ö', 'ø', 'ù', 'ü',
	'Γ', 'Δ', 'Θ', 'Λ', 'Ξ', 'Π', 'Σ', 'Φ', 'Ψ', 'Ω',
}

// extensionRunes cost an escape septet each.
var extensionRunes = []rune{
	'\f', '[', '\\', ']', '^', '{', '|', '}', '~', '€',
}

var (
	baseSet      = runeSet(baseRunes)
	extensionSet = runeSet(extensionRunes)
)

func runeSet(rs []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// IsBase reports whether r belongs to the default 7-bit table.
func IsBase(r rune) bool {
	_, ok := baseSet[r]
	return ok
}

// IsExtension reports whether r is an extension-table character.
func IsExtension(r rune) bool {
	_, ok := extensionSet[r]
	return ok
}

// InRepertoire reports whether r can be sent with a 7-bit alphabet,
// either directly or through the extension table.
func InRepertoire(r rune) bool {
	return IsBase(r) || IsExtension(r)
}

// BaseRunes returns a copy of the default table.
func BaseRunes() []rune {
	return append([]rune(nil), baseRunes...)
}

// ExtensionRunes returns a copy of the extension table.
func ExtensionRunes() []rune {
	return append([]rune(nil), extensionRunes...)
}
