package u8

func isLocaleStop(c byte) bool {
	return c == 0 || c == '@' || c == '+' || c == ','
}

// IsLocaleUTF8 reports whether a locale name such as "en_US.UTF-8" selects
// the UTF-8 codeset. Only the text between the first '.' and the next '@',
// '+' or ',' is examined, and it must be exactly "UTF-8" or "utf8".
func IsLocaleUTF8(locale string) bool {
	for i := 0; i < len(locale) && !isLocaleStop(locale[i]); i++ {
		if locale[i] != '.' {
			continue
		}
		end := i + 1
		for end < len(locale) && !isLocaleStop(locale[end]) {
			end++
		}
		codeset := locale[i+1 : end]
		return codeset == "UTF-8" || codeset == "utf8"
	}
	return false
}
