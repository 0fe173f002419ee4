package gen

import "fmt"

// Mode selects which definition form is emitted.
type Mode string

const (
	// ModeFull emits ɵɵdefineNgModule calls.
	ModeFull Mode = "full"
	// ModePartial emits ɵɵngDeclareNgModule declarations for later linking.
	ModePartial Mode = "partial"
)

// ParseMode converts a configuration value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModePartial:
		return Mode(s), nil
	case "":
		return ModeFull, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeFull, ModePartial)
	}
}
