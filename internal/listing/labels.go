package listing

// Supported interface languages. Spanish is the base language; unknown
// values fall back to it.
const (
	LangES = "es"
	LangEN = "en"
	LangPT = "pt"
)

// NormalizeLang maps any input to a supported language.
func NormalizeLang(lang string) string {
	switch lang {
	case LangEN, LangPT:
		return lang
	default:
		return LangES
	}
}

var typeLabels = map[Type]map[string]string{
	TypeBar:        {LangES: "Bares", LangEN: "Bars", LangPT: "Bares"},
	TypeRestaurant: {LangES: "Restaurantes", LangEN: "Restaurants", LangPT: "Restaurantes"},
	TypeCafe:       {LangES: "Cafés", LangEN: "Cafes", LangPT: "Cafés"},
	TypeHotel:      {LangES: "Hoteles", LangEN: "Hotels", LangPT: "Hotéis"},
	TypeEvent:      {LangES: "Eventos", LangEN: "Events", LangPT: "Eventos"},
	TypeGallery:    {LangES: "Galerías", LangEN: "Galleries", LangPT: "Galerias"},
	TypeShopping:   {LangES: "Shopping", LangEN: "Shopping", LangPT: "Shopping"},
}

// TypeLabel returns the localized display label for a catalog type. Unified
// search matches the search term against this label too, so "galerias" finds
// every gallery.
func TypeLabel(t Type, lang string) string {
	labels, ok := typeLabels[t]
	if !ok {
		return string(t)
	}
	return labels[NormalizeLang(lang)]
}
