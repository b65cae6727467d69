package models

// Mode is the active mode of the Buckaroo account or a payment method.
type Mode int

// Modes as stored in configuration.
const (
	ModeInactive Mode = 0
	ModeTest     Mode = 1
	ModeLive     Mode = 2
)

var modes = [...]string{
	"inactive",
	"test",
	"live",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modes) {
		return "unknown"
	}
	return modes[m]
}

// IsActive reports whether the mode is test or live.
func (m Mode) IsActive() bool {
	return m != ModeInactive
}
