package words

import "strings"

type french struct{}

var (
	frUnits = [20]string{"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
		"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	frTens = [7]string{"", "", "vingt", "trente", "quarante", "cinquante", "soixante"}
)

func (french) spell(n int64) string {
	if n == 0 {
		return frUnits[0]
	}
	gs := groups(n)
	var parts []string
	for i := len(gs) - 1; i >= 0; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		switch i {
		case 0:
			parts = append(parts, frBelow1000(g, true))
		case 1:
			if g == 1 {
				parts = append(parts, "mille")
			} else {
				parts = append(parts, frBelow1000(g, false), "mille")
			}
		default:
			word := "million"
			if i == 3 {
				word = "milliard"
			}
			if g > 1 {
				word += "s"
			}
			parts = append(parts, frBelow1000(g, true), word)
		}
	}
	return join(parts...)
}

// frBelow1000 spells 1..999; final keeps the plural s of "cents" and "quatre-vingts"
func frBelow1000(n int, final bool) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1:
		parts = append(parts, "cent")
	case h > 1 && r == 0 && final:
		parts = append(parts, frUnits[h], "cents")
	case h > 1:
		parts = append(parts, frUnits[h], "cent")
	}
	if r > 0 {
		parts = append(parts, frBelow100(r, final))
	}
	return join(parts...)
}

func frBelow100(n int, final bool) string {
	switch {
	case n < 20:
		return frUnits[n]
	case n < 70:
		t, u := n/10, n%10
		switch u {
		case 0:
			return frTens[t]
		case 1:
			return frTens[t] + " et un"
		default:
			return frTens[t] + "-" + frUnits[u]
		}
	case n < 80:
		if n == 71 {
			return "soixante et onze"
		}
		return "soixante-" + frUnits[n-60]
	case n == 80:
		if final {
			return "quatre-vingts"
		}
		return "quatre-vingt"
	default:
		return "quatre-vingt-" + frUnits[n-80]
	}
}

type italian struct{}

var (
	itUnits = [20]string{"zero", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove",
		"dieci", "undici", "dodici", "tredici", "quattordici", "quindici", "sedici", "diciassette", "diciotto", "diciannove"}
	itTens = [10]string{"", "", "venti", "trenta", "quaranta", "cinquanta", "sessanta", "settanta", "ottanta", "novanta"}
)

func (italian) spell(n int64) string {
	if n == 0 {
		return itUnits[0]
	}
	gs := groups(n)
	var big []string
	for i := len(gs) - 1; i >= 2; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		one, many := "milione", "milioni"
		if i == 3 {
			one, many = "miliardo", "miliardi"
		}
		if g == 1 {
			big = append(big, "un "+one)
		} else {
			big = append(big, itBelow1000(g)+" "+many)
		}
	}

	var small strings.Builder
	if len(gs) > 1 {
		switch g := gs[1]; {
		case g == 1:
			small.WriteString("mille")
		case g > 1:
			// the accent of "tré" is dropped inside compounds
			small.WriteString(strings.Replace(itBelow1000(g), "tré", "tre", 1))
			small.WriteString("mila")
		}
	}
	if gs[0] > 0 {
		small.WriteString(itBelow1000(gs[0]))
	}
	return join(append(big, small.String())...)
}

func itBelow1000(n int) string {
	h, r := n/100, n%100
	var b strings.Builder
	if h > 0 {
		cento := "cento"
		// cento drops its vowel before otto and ottanta
		if r == 8 || (r >= 80 && r < 90) {
			cento = "cent"
		}
		if h > 1 {
			b.WriteString(itUnits[h])
		}
		b.WriteString(cento)
	}
	if r > 0 {
		b.WriteString(itBelow100(r))
	}
	return b.String()
}

func itBelow100(n int) string {
	if n < 20 {
		return itUnits[n]
	}
	t, u := n/10, n%10
	tens := itTens[t]
	switch u {
	case 0:
		return tens
	case 1, 8:
		return tens[:len(tens)-1] + itUnits[u]
	case 3:
		return tens + "tré"
	default:
		return tens + itUnits[u]
	}
}

type spanish struct{}

var (
	esUnits = [30]string{"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
		"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve",
		"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve"}
	esTens     = [10]string{"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	esHundreds = [10]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos",
		"quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos"}
)

func (spanish) spell(n int64) string {
	if n == 0 {
		return esUnits[0]
	}
	millions, rest := int(n/1_000_000), int(n%1_000_000)
	var parts []string
	switch {
	case millions == 1:
		parts = append(parts, "un millón")
	case millions > 1:
		parts = append(parts, esBelowMillion(millions, true), "millones")
	}
	if rest > 0 {
		parts = append(parts, esBelowMillion(rest, false))
	}
	return join(parts...)
}

// esBelowMillion spells 1..999999; apocope shortens a trailing "uno" to "un"
func esBelowMillion(n int, apocope bool) string {
	th, r := n/1000, n%1000
	var parts []string
	switch {
	case th == 1:
		parts = append(parts, "mil")
	case th > 1:
		parts = append(parts, esBelow1000(th, true), "mil")
	}
	if r > 0 {
		parts = append(parts, esBelow1000(r, apocope))
	}
	return join(parts...)
}

func esBelow1000(n int, apocope bool) string {
	if n == 100 {
		return "cien"
	}
	h, r := n/100, n%100
	parts := []string{esHundreds[h]}
	if r > 0 {
		parts = append(parts, esBelow100(r, apocope))
	}
	return join(parts...)
}

func esBelow100(n int, apocope bool) string {
	if n < 30 {
		switch {
		case apocope && n == 1:
			return "un"
		case apocope && n == 21:
			return "veintiún"
		}
		return esUnits[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return esTens[t]
	}
	unit := esUnits[u]
	if apocope && u == 1 {
		unit = "un"
	}
	return esTens[t] + " y " + unit
}

type portuguese struct{}

var (
	ptUnits = [20]string{"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
		"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	ptTens     = [10]string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	ptHundreds = [10]string{"", "cento", "duzentos", "trezentos", "quatrocentos",
		"quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

func (portuguese) spell(n int64) string {
	if n == 0 {
		return ptUnits[0]
	}
	gs := groups(n)
	var parts []string
	for i := len(gs) - 1; i >= 0; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		var p string
		switch {
		case i == 0:
			p = ptBelow1000(g)
		case i == 1 && g == 1:
			p = "mil"
		case i == 1:
			p = ptBelow1000(g) + " mil"
		case g == 1:
			p = "um " + []string{"", "", "milhão", "bilhão"}[i]
		default:
			p = ptBelow1000(g) + " " + []string{"", "", "milhões", "bilhões"}[i]
		}
		parts = append(parts, p)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	// the last group joins with "e" when it is below a hundred or a round hundred
	if last := gs[0]; last > 0 && (last < 100 || last%100 == 0) {
		return strings.Join(parts[:len(parts)-1], " ") + " e " + parts[len(parts)-1]
	}
	return strings.Join(parts, " ")
}

func ptBelow1000(n int) string {
	if n == 100 {
		return "cem"
	}
	h, r := n/100, n%100
	var parts []string
	if h > 0 {
		parts = append(parts, ptHundreds[h])
	}
	if r > 0 {
		if r < 20 {
			parts = append(parts, ptUnits[r])
		} else {
			parts = append(parts, ptTens[r/10])
			if u := r % 10; u > 0 {
				parts = append(parts, ptUnits[u])
			}
		}
	}
	return strings.Join(parts, " e ")
}
