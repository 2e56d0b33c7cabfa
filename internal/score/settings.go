package score

// User-facing brightness scale.
const (
	MinBrightness = 1
	MaxBrightness = 10
)

// Settings are the persisted user preferences.
type Settings struct {
	LCDBrightness    int
	MatrixBrightness int
	Sound            bool
	Tilt             bool
}

// DefaultSettings returns the factory settings.
func DefaultSettings() Settings {
	return Settings{
		LCDBrightness:    10,
		MatrixBrightness: 5,
		Sound:            true,
		Tilt:             false,
	}
}

func (s Settings) encode() [settingsLen]byte {
	return [settingsLen]byte{
		offLCD:    byte(s.LCDBrightness),
		offMatrix: byte(s.MatrixBrightness),
		offSound:  boolByte(s.Sound),
		offTilt:   boolByte(s.Tilt),
	}
}

// decodeSettings parses the stored bytes, replacing any byte outside its
// domain with the default. ok is false if any byte was replaced.
func decodeSettings(b [settingsLen]byte) (s Settings, ok bool) {
	s = DefaultSettings()
	ok = true

	if v := int(b[offLCD]); v >= MinBrightness && v <= MaxBrightness {
		s.LCDBrightness = v
	} else {
		ok = false
	}
	if v := int(b[offMatrix]); v >= MinBrightness && v <= MaxBrightness {
		s.MatrixBrightness = v
	} else {
		ok = false
	}
	if v, valid := byteBool(b[offSound]); valid {
		s.Sound = v
	} else {
		ok = false
	}
	if v, valid := byteBool(b[offTilt]); valid {
		s.Tilt = v
	} else {
		ok = false
	}
	return s, ok
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func byteBool(b byte) (v, ok bool) {
	switch b {
	case 0:
		return false, true
	case 1:
		return true, true
	default:
		return false, false
	}
}
