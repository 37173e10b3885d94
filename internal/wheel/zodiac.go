package wheel

import "math"

// ZodiacSigns lists the twelve signs in ecliptic order, 30° each from 0°
// Aries.
var ZodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// zodiacSymbols is indexed like ZodiacSigns. ︎ forces text presentation.
var zodiacSymbols = [12]string{
	"♈︎", "♉︎", "♊︎", "♋︎", "♌︎", "♍︎",
	"♎︎", "♏︎", "♐︎", "♑︎", "♒︎", "♓︎",
}

// Zodiac returns the sign name, its glyph, and the degree within the sign
// for an ecliptic longitude.
func Zodiac(longitude float64) (sign, symbol string, within float64) {
	deg := normalize(longitude)
	idx := int(math.Floor(deg/30.0)) % 12
	return ZodiacSigns[idx], zodiacSymbols[idx], deg - float64(idx)*30.0
}
