package i18n

import "testing"

func TestGetCatalog_Resolution(t *testing.T) {
	testCases := []struct {
		locale string
		want   string
	}{
		{locale: "", want: BaseLocale},
		{locale: "en-US", want: BaseLocale},
		{locale: "sv-SE", want: "sv-SE"},
		{locale: "sv", want: "sv-SE"},
		{locale: "sv-FI,sv;q=0.9,en;q=0.5", want: "sv-SE"},
		{locale: "ja-JP", want: BaseLocale},
		{locale: "not a locale!!", want: BaseLocale},
	}
	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			if got := GetCatalog(tc.locale).Locale(); got != tc.want {
				t.Fatalf("GetCatalog(%q) = %s, want %s", tc.locale, got, tc.want)
			}
		})
	}
}

func TestEveryLocaleTranslatesEveryCode(t *testing.T) {
	for _, locale := range []string{BaseLocale, "sv-SE"} {
		cat := GetCatalog(locale)
		for _, code := range []string{CodeUnknown, CodeMovieQueryRequired, CodeMovieIDRequired, CodeMovieNotFound} {
			if got := cat.Format(code, map[string]string{"MovieID": "x"}); got == code {
				t.Fatalf("%s has no message for %s", locale, code)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	cat := NewCatalog("test", map[string]string{
		"code":   "hello {{.Name}}",
		"broken": "{{ if .Name }}",
		"exec":   "{{ call .Name }}",
	})

	if got := cat.Format("code", map[string]string{"Name": "Ada"}); got != "hello Ada" {
		t.Fatalf("Format() = %q, want hello Ada", got)
	}
	if got := cat.Format("unknown", nil); got != "unknown" {
		t.Fatalf("Format() = %q, want code fallback", got)
	}
	if got := cat.Format("code", nil); got != "hello <no value>" {
		t.Fatalf("Format() = %q, want missing metadata rendering", got)
	}
	if got := cat.Format("broken", nil); got != "{{ if .Name }}" {
		t.Fatalf("Format() = %q, want parse fallback", got)
	}
	if got := cat.Format("exec", map[string]string{"Name": "X"}); got != "{{ call .Name }}" {
		t.Fatalf("Format() = %q, want execute fallback", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("fr-FR", map[string]string{CodeMovieNotFound: "introuvable"})
	RegisterCatalog(custom)
	t.Cleanup(func() {
		catalogsMu.Lock()
		delete(catalogs, "fr-FR")
		catalogsMu.Unlock()
		matcherMu.Lock()
		matcher = nil
		matcherMu.Unlock()
	})

	if got := GetCatalog("fr-FR"); got != custom {
		t.Fatal("expected registered catalog")
	}
	if got := GetCatalog("fr"); got != custom {
		t.Fatalf("GetCatalog(fr) = %s, want fr-FR", got.Locale())
	}
}

func TestBuiltInCatalogsRegisteredAtInit(t *testing.T) {
	for _, locale := range []string{BaseLocale, "sv-SE"} {
		if lookupCatalog(locale) == nil {
			t.Fatalf("catalog %s not registered", locale)
		}
	}
}
