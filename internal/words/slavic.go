package words

// slavic covers the languages with one/few/many plural forms for scale words
type slavic struct {
	zero     string
	units    [10]string
	feminine [3]string
	teens    [10]string
	tens     [10]string
	hundreds [10]string
	scales   [3][3]string

	feminineThousands bool
	omitSingleScale   bool
	polishPlural      bool
}

func (s slavic) spell(n int64) string {
	if n == 0 {
		return s.zero
	}
	gs := groups(n)
	var parts []string
	for i := len(gs) - 1; i >= 0; i-- {
		g := gs[i]
		if g == 0 {
			continue
		}
		if i == 0 {
			parts = append(parts, s.triple(g, false))
			continue
		}
		scale := s.scales[i-1]
		if g == 1 && s.omitSingleScale {
			parts = append(parts, scale[0])
			continue
		}
		parts = append(parts, s.triple(g, i == 1 && s.feminineThousands), scale[s.form(g)])
	}
	return join(parts...)
}

func (s slavic) triple(n int, feminine bool) string {
	h, r := n/100, n%100
	parts := []string{s.hundreds[h]}
	if r >= 10 && r < 20 {
		return join(append(parts, s.teens[r-10])...)
	}
	parts = append(parts, s.tens[r/10])
	if u := r % 10; u > 0 {
		if feminine && u <= 2 {
			parts = append(parts, s.feminine[u])
		} else {
			parts = append(parts, s.units[u])
		}
	}
	return join(parts...)
}

func (s slavic) form(n int) int {
	last, lastTwo := n%10, n%100
	switch {
	case s.polishPlural && n == 1:
		return 0
	case !s.polishPlural && last == 1 && lastTwo != 11:
		return 0
	case last >= 2 && last <= 4 && (lastTwo < 12 || lastTwo > 14):
		return 1
	default:
		return 2
	}
}

var polish = slavic{
	zero:     "zero",
	units:    [10]string{"", "jeden", "dwa", "trzy", "cztery", "pięć", "sześć", "siedem", "osiem", "dziewięć"},
	teens: [10]string{"dziesięć", "jedenaście", "dwanaście", "trzynaście", "czternaście",
		"piętnaście", "szesnaście", "siedemnaście", "osiemnaście", "dziewiętnaście"},
	tens: [10]string{"", "", "dwadzieścia", "trzydzieści", "czterdzieści",
		"pięćdziesiąt", "sześćdziesiąt", "siedemdziesiąt", "osiemdziesiąt", "dziewięćdziesiąt"},
	hundreds: [10]string{"", "sto", "dwieście", "trzysta", "czterysta",
		"pięćset", "sześćset", "siedemset", "osiemset", "dziewięćset"},
	scales: [3][3]string{
		{"tysiąc", "tysiące", "tysięcy"},
		{"milion", "miliony", "milionów"},
		{"miliard", "miliardy", "miliardów"},
	},
	omitSingleScale: true,
	polishPlural:    true,
}

var russian = slavic{
	zero:     "ноль",
	units:    [10]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
	feminine: [3]string{"", "одна", "две"},
	teens: [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"},
	tens: [10]string{"", "", "двадцать", "тридцать", "сорок",
		"пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"},
	hundreds: [10]string{"", "сто", "двести", "триста", "четыреста",
		"пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"},
	scales: [3][3]string{
		{"тысяча", "тысячи", "тысяч"},
		{"миллион", "миллиона", "миллионов"},
		{"миллиард", "миллиарда", "миллиардов"},
	},
	feminineThousands: true,
}

var ukrainian = slavic{
	zero:     "нуль",
	units:    [10]string{"", "один", "два", "три", "чотири", "п'ять", "шість", "сім", "вісім", "дев'ять"},
	feminine: [3]string{"", "одна", "дві"},
	teens: [10]string{"десять", "одинадцять", "дванадцять", "тринадцять", "чотирнадцять",
		"п'ятнадцять", "шістнадцять", "сімнадцять", "вісімнадцять", "дев'ятнадцять"},
	tens: [10]string{"", "", "двадцять", "тридцять", "сорок",
		"п'ятдесят", "шістдесят", "сімдесят", "вісімдесят", "дев'яносто"},
	hundreds: [10]string{"", "сто", "двісті", "триста", "чотириста",
		"п'ятсот", "шістсот", "сімсот", "вісімсот", "дев'ятсот"},
	scales: [3][3]string{
		{"тисяча", "тисячі", "тисяч"},
		{"мільйон", "мільйони", "мільйонів"},
		{"мільярд", "мільярди", "мільярдів"},
	},
	feminineThousands: true,
}
