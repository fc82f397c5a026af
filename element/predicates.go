package element

import (
	"errors"
	"strings"
)

var ErrUnknownElement = errors.New("could not find element type")

// Base strips the solid/fast/double count prefix and the mount prefix, so
// "Mtd-4Bw" and "8Bw" both give "Bw".
func Base(code string) string {
	code = strings.TrimPrefix(code, "Mtd-")
	return strings.TrimLeft(code, "0123456789")
}

func IsDouble(code string) bool {
	switch strings.TrimPrefix(code, "Mtd-") {
	case "6Kn", "6Cv", "8Sp", "8Bw", "8Cb", "8Lb":
		return true
	}
	return false
}

func IsFast(code string) bool {
	switch strings.TrimPrefix(code, "Mtd-") {
	case "3Pk", "3Bd", "6Bd", "3Ax", "3Bw", "3Cb", "3Lb", "Ps", "3Wb", "5Hd":
		return true
	}
	return false
}

func IsSolid(code string) bool {
	switch strings.TrimPrefix(code, "Mtd-") {
	case "Sp", "8Sp", "4Bd", "4Ax", "4Bw", "4Cb", "4Lb", "4Wb", "7Hd":
		return true
	}
	return false
}

// CanDismount reports whether the element may fight dismounted.
func CanDismount(code string) bool {
	return code == "4Kn" || strings.HasPrefix(code, "Mtd-")
}

func IsMounted(code string) bool {
	t, ok := TypeOf(code)
	if !ok {
		return false
	}
	switch t {
	case Elephants, Knights, Cavalry, LightHorse, ScythedChariots, Camelry, MountedInfantry:
		return true
	}
	return false
}

func IsFoot(code string) bool {
	return IsCode(code) && !IsMounted(code)
}

func IsCamel(code string) bool {
	return code == "LCm" || code == "Cm"
}

func IsChariot(code string) bool {
	switch code {
	case "HCh", "LCh", "SCh":
		return true
	}
	return false
}

// IsMissile reports whether the element shoots.
func IsMissile(code string) bool {
	switch code {
	case "LH", "LCm", "Ps", "Art", "WWg":
		return true
	}
	t, ok := TypeOf(code)
	return ok && (t == Bows || t == MountedInfantry)
}
