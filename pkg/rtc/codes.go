package rtc

import "strings"

// NormalizeNCM elimina puntos, espacios y cualquier carácter no numérico del NCM.
// Ej: "2203.00.00" → "22030000"
func NormalizeNCM(ncm string) string {
	return digitsOnly(ncm)
}

// NCMPrefix devuelve los 4 primeros dígitos del NCM normalizado (posición SH), o "" si es corto.
func NCMPrefix(ncm string) string {
	n := NormalizeNCM(ncm)
	if len(n) < 4 {
		return ""
	}
	return n[:4]
}

// ValidNCM el NCM debe tener exactamente 8 dígitos tras normalizar.
func ValidNCM(ncm string) bool {
	return len(NormalizeNCM(ncm)) == 8 && len(strings.TrimSpace(ncm)) > 0
}

// ValidCST el CST del IBS/CBS (y del IS) tiene 3 dígitos.
func ValidCST(cst string) bool {
	return isDigits(cst, 3)
}

// ValidCClassTrib el código de clasificación tributaria tiene 6 dígitos.
func ValidCClassTrib(code string) bool {
	return isDigits(code, 6)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
