package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unexpected_eof":
			return "入力が途中で終了しました"
		case "unexpected_character":
			return "予期しない文字です"
		case "invalid_escape":
			return "エスケープシーケンスが不正です"
		case "invalid_number":
			return "数値リテラルが不正です"
		case "unterminated_string":
			return "文字列が閉じられていません"
		case "trailing_data":
			return "値の後に余分なデータがあります"
		case "max_depth_exceeded":
			return "ネストが深すぎます"
		case "duplicate_key":
			return "キーが重複しています"
		case "truncated":
			return "打ち切られました"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "unexpected_eof":
			return "unexpected end of input"
		case "unexpected_character":
			return "unexpected character"
		case "invalid_escape":
			return "invalid escape sequence"
		case "invalid_number":
			return "invalid number literal"
		case "unterminated_string":
			return "string not terminated"
		case "trailing_data":
			return "unexpected data after value"
		case "max_depth_exceeded":
			return "maximum nesting depth exceeded"
		case "duplicate_key":
			return "duplicate key"
		case "truncated":
			return "truncated"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
