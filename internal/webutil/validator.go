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
	"enrollmentId": "受講ID",
	"dayNumber":    "日番号",
	"actionIndex":  "アクション番号",
	"exerciseId":   "エクササイズID",
	"sectionId":    "セクションID",
	"programSlug":  "プログラム",
	"planTier":     "プラン",
	"programId":    "プログラムID",
	"category":     "カテゴリ",
	"title":        "タイトル",
	"description":  "説明",
}

// translatedField は jsonタグ名を日本語のフィールド名に変換する。マップにない場合はそのまま。
func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
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

	// タグごとのメッセージを上書き。{0} はフィールド名、{1} はタグのパラメータ。
	overrides := map[string]string{
		"required": "{0}は必須項目です。",
		"uuid":     "{0}はUUID形式で指定してください。",
		"min":      "{0}は{1}以上で指定してください。",
		"max":      "{0}は{1}文字以下で入力してください。",
		"oneof":    "{0}は[{1}]のいずれかを指定してください。",
	}
	for tag, msg := range overrides {
		tag, msg := tag, msg
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}
