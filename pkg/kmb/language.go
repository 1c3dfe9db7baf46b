package kmb

// Language selects which of the feed's three display name columns is used
type Language string

const (
	LanguageEnglish            Language = "en"
	LanguageTraditionalChinese Language = "tc"
	LanguageSimplifiedChinese  Language = "sc"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageTraditionalChinese, LanguageSimplifiedChinese:
		return true
	}

	return false
}
