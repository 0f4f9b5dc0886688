package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"title":              "タイトル",
	"description":        "説明",
	"content":            "本文",
	"courseId":           "コースID",
	"moduleId":           "モジュールID",
	"lessonId":           "レッスンID",
	"userId":             "ユーザーID",
	"progressPercentage": "進捗率",
	"name":               "名前",
	"email":              "メールアドレス",
	"password":           "パスワード",
}

// FieldLabel はJSONフィールド名に対応する日本語名を返します。
func FieldLabel(field string) string {
	if label, ok := fieldNameTranslations[field]; ok {
		return label
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0}は必須項目です。", false)
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。", false)
	registerTranslation("min", "{0}は{1}文字以上で入力してください。", true)
	registerTranslation("max", "{0}は{1}文字以下で入力してください。", true)
}

// registerTranslation はタグのメッセージを上書きします。withParam が true の場合 {1} にタグの引数を渡します。
func registerTranslation(tag, msg string, withParam bool) {
	err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		label := FieldLabel(fe.Field())
		var t string
		if withParam {
			t, _ = ut.T(tag, label, fe.Param())
		} else {
			t, _ = ut.T(tag, label)
		}
		return t
	})
	if err != nil {
		log.Fatal(err)
	}
}
