package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseTranslatePayload(t *testing.T) {
	// translate_a/single 返回嵌套数组,首元素是分句列表
	body := `[[["I am very happy","Estoy muy feliz",null,null,10]],null,"es"]`
	got, err := parseTranslatePayload([]byte(body))
	if err != nil {
		t.Fatalf("parseTranslatePayload returned error: %v", err)
	}
	if got != "I am very happy" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestParseTranslatePayloadMultipleSentences(t *testing.T) {
	body := `[[["Hello. ","Hola. ",null,null,10],["How are you?","¿Cómo estás?",null,null,10]],null,"es"]`
	got, err := parseTranslatePayload([]byte(body))
	if err != nil {
		t.Fatalf("parseTranslatePayload returned error: %v", err)
	}
	if got != "Hello. How are you?" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestParseTranslatePayloadMalformed(t *testing.T) {
	for _, body := range []string{"", "{}", "[]", `[null]`} {
		if _, err := parseTranslatePayload([]byte(body)); err == nil {
			t.Fatalf("expected error for payload %q", body)
		}
	}
}

func TestTranslatorCallsEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "en" {
			t.Fatalf("expected target language en, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "Estoy muy feliz" {
			t.Fatalf("unexpected query text %q", got)
		}
		w.Write([]byte(`[[["I am very happy","Estoy muy feliz",null,null,10]],null,"es"]`))
	}))
	defer srv.Close()

	tr := NewTranslator(srv.URL, 5*time.Second)
	got, err := tr.Translate(context.Background(), "Estoy muy feliz", "es", "en")
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "I am very happy" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestTranslatorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewTranslator(srv.URL, 5*time.Second)
	if _, err := tr.Translate(context.Background(), "hola", "es", "en"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("zh-cn"); got != "Chinese (Simplified)" {
		t.Fatalf("unexpected name for zh-cn: %q", got)
	}
	if got := LanguageName("xx"); got != "xx" {
		t.Fatalf("unknown code must be returned as-is, got %q", got)
	}
}

func TestDetectLanguageShortTextDefaultsToEnglish(t *testing.T) {
	code, name := DetectLanguage("ok")
	if code != "en" || name != "English" {
		t.Fatalf("expected en/English for short text, got %s/%s", code, name)
	}
}
