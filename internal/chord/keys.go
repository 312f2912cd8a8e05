package chord

// Key - клавиша, не зависящая от платформы.
type Key int

const (
	KeyUnknown Key = iota
	KeyAlt
	KeyMetaLeft // Win/Super/Cmd
	KeyControlLeft
	KeyC
	KeyS
	KeyL
	KeyV
)

func (k Key) String() string {
	switch k {
	case KeyAlt:
		return "alt"
	case KeyMetaLeft:
		return "meta"
	case KeyControlLeft:
		return "ctrl"
	case KeyC:
		return "c"
	case KeyS:
		return "s"
	case KeyL:
		return "l"
	case KeyV:
		return "v"
	default:
		return "unknown"
	}
}

// LetterKey переводит значение настройки активации в клавишу.
func LetterKey(letter string) (Key, bool) {
	switch letter {
	case "C":
		return KeyC, true
	case "S":
		return KeyS, true
	case "L":
		return KeyL, true
	default:
		return KeyUnknown, false
	}
}

// Event - нажатие или отпускание клавиши.
type Event struct {
	Key     Key
	Pressed bool
}

// Press создаёт событие нажатия.
func Press(k Key) Event { return Event{Key: k, Pressed: true} }

// Release создаёт событие отпускания.
func Release(k Key) Event { return Event{Key: k} }
