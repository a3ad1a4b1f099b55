package words

import "strings"

type german struct{}

var (
	deUnits = [20]string{"null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun",
		"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn"}
	deTens = [10]string{"", "", "zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig"}
)

func (german) spell(n int64) string {
	if n == 0 {
		return deUnits[0]
	}
	gs := groups(n)
	var big []string
	for i := len(gs) - 1; i >= 2; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		one, many := "Million", "Millionen"
		if i == 3 {
			one, many = "Milliarde", "Milliarden"
		}
		if g == 1 {
			big = append(big, "eine "+one)
		} else {
			big = append(big, deBelow1000(g, false)+" "+many)
		}
	}

	var small strings.Builder
	if len(gs) > 1 && gs[1] > 0 {
		small.WriteString(deBelow1000(gs[1], false))
		small.WriteString("tausend")
	}
	if gs[0] > 0 {
		small.WriteString(deBelow1000(gs[0], true))
	}
	return join(append(big, small.String())...)
}

// deBelow1000 spells 1..999 as one compound; final selects "eins" over "ein"
func deBelow1000(n int, final bool) string {
	var b strings.Builder
	if h := n / 100; h > 0 {
		b.WriteString(deUnit(h, false))
		b.WriteString("hundert")
	}
	if r := n % 100; r > 0 {
		b.WriteString(deBelow100(r, final))
	}
	return b.String()
}

func deBelow100(n int, final bool) string {
	if n < 20 {
		return deUnit(n, final)
	}
	t, u := n/10, n%10
	if u == 0 {
		return deTens[t]
	}
	return deUnit(u, false) + "und" + deTens[t]
}

func deUnit(n int, final bool) string {
	if n == 1 && !final {
		return "ein"
	}
	return deUnits[n]
}

type dutch struct{}

var (
	nlUnits = [20]string{"nul", "een", "twee", "drie", "vier", "vijf", "zes", "zeven", "acht", "negen",
		"tien", "elf", "twaalf", "dertien", "veertien", "vijftien", "zestien", "zeventien", "achttien", "negentien"}
	nlTens = [10]string{"", "", "twintig", "dertig", "veertig", "vijftig", "zestig", "zeventig", "tachtig", "negentig"}
)

func (dutch) spell(n int64) string {
	if n == 0 {
		return nlUnits[0]
	}
	gs := groups(n)
	scales := []string{"", "duizend", "miljoen", "miljard"}
	var parts []string
	for i := len(gs) - 1; i >= 0; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		switch {
		case i == 0:
			parts = append(parts, nlBelow1000(g))
		case i == 1 && g == 1:
			parts = append(parts, "duizend")
		case i == 1:
			parts = append(parts, nlBelow1000(g)+"duizend")
		default:
			parts = append(parts, nlBelow1000(g), scales[i])
		}
	}
	return join(parts...)
}

func nlBelow1000(n int) string {
	var b strings.Builder
	if h := n / 100; h == 1 {
		b.WriteString("honderd")
	} else if h > 1 {
		b.WriteString(nlUnits[h])
		b.WriteString("honderd")
	}
	if r := n % 100; r > 0 {
		b.WriteString(nlBelow100(r))
	}
	return b.String()
}

func nlBelow100(n int) string {
	if n < 20 {
		return nlUnits[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return nlTens[t]
	}
	unit := nlUnits[u]
	// twee and drie take a diaeresis before "en"
	if strings.HasSuffix(unit, "e") {
		return unit + "ën" + nlTens[t]
	}
	return unit + "en" + nlTens[t]
}
