// Package translit перекодирует текст, набранный не в той раскладке:
// латиница QWERTY <-> кириллица ЙЦУКЕН.
package translit

// Direction задаёт направление перекодировки.
type Direction int

const (
	// ToCyrillic - латиница -> кириллица (прямая таблица).
	ToCyrillic Direction = iota
	// ToLatin - кириллица -> латиница (обратная таблица).
	ToLatin
)

func (d Direction) String() string {
	switch d {
	case ToCyrillic:
		return "latin->cyrillic"
	case ToLatin:
		return "cyrillic->latin"
	default:
		return "unknown"
	}
}

var reverse = invert(forward)

func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Detect выбирает направление по большинству символов.
//
// Символ, найденный среди ключей прямой таблицы, считается латинским, даже
// если он же есть среди ключей обратной (часть пунктуации). При равенстве,
// в том числе для пустой строки, выбирается ToLatin.
func Detect(text string) Direction {
	var latin, cyrillic int
	for _, r := range text {
		if _, ok := forward[r]; ok {
			latin++
		} else if _, ok := reverse[r]; ok {
			cyrillic++
		}
	}
	if latin > cyrillic {
		return ToCyrillic
	}
	return ToLatin
}

// Apply перекодирует текст в заданном направлении.
// Символы, которых нет в таблице, остаются без изменений.
func Apply(text string, dir Direction) string {
	table := reverse
	if dir == ToCyrillic {
		table = forward
	}

	out := make([]rune, 0, len(text))
	for _, r := range text {
		if mapped, ok := table[r]; ok {
			r = mapped
		}
		out = append(out, r)
	}
	return string(out)
}

// Convert определяет направление и перекодирует текст.
func Convert(text string) string {
	return Apply(text, Detect(text))
}

// Lookup возвращает пару для символа в заданном направлении.
func Lookup(r rune, dir Direction) (rune, bool) {
	if dir == ToCyrillic {
		v, ok := forward[r]
		return v, ok
	}
	v, ok := reverse[r]
	return v, ok
}

// Size возвращает число пар в таблице.
func Size() int {
	return len(forward)
}
