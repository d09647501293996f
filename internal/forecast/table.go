package forecast

// Icon is the glyph category a forecast entry renders with. The display
// picks the actual pixels; this package only names the category.
type Icon int

const (
	Sun Icon = iota
	SunCloud
	Cloud
	Rain
	Thunder
)

func (ic Icon) String() string {
	switch ic {
	case Sun:
		return "sun"
	case SunCloud:
		return "sun_cloud"
	case Cloud:
		return "cloud"
	case Rain:
		return "rain"
	case Thunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// Entry is one row of the Zambretti table.
type Entry struct {
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
}

// table maps Zambretti codes to forecast text and icon category, ordered
// from settled weather to storms. Index 0 is unused so the code is the
// index. Code 28 has no entry; the historical table skips it.
var table = [MaxCode + 1]Entry{
	1:  {"Settled fine", Sun},
	2:  {"Fine weather", Sun},
	3:  {"Becoming fine", Sun},
	4:  {"Fine, becoming less settled", Sun},
	5:  {"Fine, possible showers", SunCloud},
	6:  {"Fairly fine, improving", Sun},
	7:  {"Fairly fine, possible showers early", SunCloud},
	8:  {"Fairly fine, showery later", SunCloud},
	9:  {"Showery early, improving", Sun},
	10: {"Changeable, mending", Sun},
	11: {"Fairly fine, showers likely", SunCloud},
	12: {"Rather unsettled, clearing later", SunCloud},
	13: {"Fairly fine, possibly showery", SunCloud},
	14: {"Unsettled, probably improving", Cloud},
	15: {"Showery, bright intervals", SunCloud},
	16: {"Showery, becoming less settled", Cloud},
	17: {"Changeable, some rain", Cloud},
	18: {"Unsettled, short fine intervals", Cloud},
	19: {"Unsettled, rain later", Rain},
	20: {"Unsettled, some rain", Rain},
	21: {"Mostly very unsettled", Cloud},
	22: {"Occasional rain, worsening", Rain},
	23: {"Rain at times, very unsettled", Rain},
	24: {"Rain at frequent intervals", Rain},
	25: {"Rain, very unsettled", Rain},
	26: {"Very unsettled, rain", Rain},
	27: {"Stormy, possibly improving", Thunder},
	29: {"Stormy, much rain", Thunder},
	30: {"Severe storm, much rain", Thunder},
	31: {"Storm with heavy rain", Thunder},
	32: {"Violent storm, much rain", Thunder},
}
