package config

import "log/slog"

const (
	LangEN = "en"
	LangES = "es"
)

var SupportedLanguages = []string{LangEN, LangES}

func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		slog.Warn("unsupported language, falling back to English", "language", lang)
		return LangEN
	}
}
