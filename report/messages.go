package report

import "fmt"

// Lang selects the language of text reports.
type Lang string

// Supported languages.
const (
	LangEnglish  Lang = "en"
	LangJapanese Lang = "ja"
)

// ParseLang returns the language named s. The empty string means English.
func ParseLang(s string) (Lang, error) {
	switch Lang(s) {
	case "", LangEnglish:
		return LangEnglish, nil
	case LangJapanese:
		return LangJapanese, nil
	default:
		return "", fmt.Errorf("unknown language %q (want %q or %q)", s, LangEnglish, LangJapanese)
	}
}

// messages holds the sentences of one language.
type messages struct {
	correct      func(pattern string) string
	searched     func(alphabet string, maxLength int) string
	incorrect    func(pattern string) string
	shouldAccept string
	shouldReject string
	failure      func(pattern string, err error) string
}

var english = messages{
	correct: func(pattern string) string {
		return pattern + " is likely correct"
	},
	searched: func(alphabet string, maxLength int) string {
		return fmt.Sprintf("checked all strings of length <= %d over the alphabet Σ=%s", maxLength, alphabet)
	},
	incorrect: func(pattern string) string {
		return pattern + " is incorrect"
	},
	shouldAccept: "should have been accepted but was rejected:",
	shouldReject: "should have been rejected but was accepted:",
	failure: func(pattern string, err error) string {
		return fmt.Sprintf("%s could not be compiled: %v", pattern, err)
	},
}

var japanese = messages{
	correct: func(pattern string) string {
		return pattern + " は正しい可能性が高いです"
	},
	searched: func(alphabet string, maxLength int) string {
		return fmt.Sprintf("アルファベットΣ=%sから構成される長さ%d以下の全ての系列を調べました", alphabet, maxLength)
	},
	incorrect: func(pattern string) string {
		return pattern + " は誤答です"
	},
	shouldAccept: "受理できるはずの系列が受理されませんでした:",
	shouldReject: "受理できないはずの系列が受理されてしまいました:",
	failure: func(pattern string, err error) string {
		return fmt.Sprintf("%s は正規表現として解釈できませんでした: %v", pattern, err)
	},
}

func messagesFor(l Lang) messages {
	if l == LangJapanese {
		return japanese
	}
	return english
}
