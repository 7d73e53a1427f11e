package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates
// reference data entries as {name}.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type: expected {expected}, got {got}",
		"required":              "required property {key} missing",
		"unknown_key":           "unknown key {key}",
		"duplicate_key":         "duplicate key",
		"invalid_enum":          "invalid value {got} for {enum}; expected one of {accepted}",
		"overflow":              "number {got} out of range",
		"parse_error":           "parse error",
		"truncated":             "truncated",
		"index_out_of_range":    "{kind} index {index} out of range (len {len})",
		"unknown_kind":          "index type {target} addresses no collection",
		"extension_not_used":    "required extension {name} missing from extensionsUsed",
		"unsupported_extension": "required extension {name} not supported",
	},
	"ja": {
		"invalid_type":          "型が不正です: {expected} が必要ですが {got} です",
		"required":              "必須プロパティ {key} が不足しています",
		"unknown_key":           "未知のキー {key} です",
		"duplicate_key":         "キーが重複しています",
		"invalid_enum":          "{enum} に不正な値 {got} です。有効な値: {accepted}",
		"overflow":              "数値 {got} が範囲外です",
		"parse_error":           "解析エラー",
		"truncated":             "打ち切られました",
		"index_out_of_range":    "{kind} のインデックス {index} が範囲外です (要素数 {len})",
		"unknown_kind":          "インデックス型 {target} に対応するコレクションがありません",
		"extension_not_used":    "必須拡張 {name} が extensionsUsed にありません",
		"unsupported_extension": "必須拡張 {name} はサポートされていません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

var (
	supported = []language.Tag{language.English, language.Japanese}
	matcher   = language.NewMatcher(supported)
)

// SetLanguage switches the built-in Translator language. lang is a BCP 47
// tag ("ja", "ja-JP", "en-US", ...); anything without a Japanese match
// selects English.
func SetLanguage(lang string) {
	SetTranslator(dictTranslator{lang: matchLanguage(lang)})
}

func matchLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "en"
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	base, _ := supported[i].Base()
	return base.String()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
