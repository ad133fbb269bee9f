package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sudharson1234/emotionv2/internal/config"
	"github.com/Sudharson1234/emotionv2/internal/database"
	"github.com/Sudharson1234/emotionv2/internal/emotion"
	"github.com/Sudharson1234/emotionv2/internal/model"
	"github.com/Sudharson1234/emotionv2/internal/service"
	"github.com/Sudharson1234/emotionv2/internal/translate"
)

// setupTestServer 用内存库搭一个完整的服务实例
func setupTestServer(t *testing.T) *HTTPGinServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get raw connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.SetDB(db)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.HTTP.Port = 0
	cfg.Export.DomainName = "EmotiChat"

	chats := service.NewChatService()
	deps := Dependencies{
		Users:      service.NewUserService(),
		Sessions:   service.NewSessionService(nil, 24*time.Hour),
		Chats:      chats,
		Analytics:  service.NewAnalyticsService(chats),
		Detector:   emotion.NewDetector(nil, emotion.NewLexiconClassifier()),
		Responder:  emotion.NewResponder(nil),
		Translator: translate.NewService(nil, false),
	}
	return NewHTTPGinServer(cfg, deps)
}

func doJSON(t *testing.T, s *HTTPGinServer, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	data, _ := resp.Data.(map[string]any)
	return data
}

func signupAndLogin(t *testing.T, s *HTTPGinServer, email string) string {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/signup", "", map[string]string{
		"name":             "Test User",
		"phone":            fmt.Sprintf("1%s", email[:9]),
		"email":            email,
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	data := decodeData(t, w)
	token, _ := data["session_token"].(string)
	if token == "" {
		t.Fatalf("login response missing session token: %s", w.Body.String())
	}
	return token
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	s := setupTestServer(t)

	body := map[string]string{
		"name":             "Alice",
		"phone":            "1234567890",
		"email":            "alice@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
	}
	if w := doJSON(t, s, http.MethodPost, "/signup", "", body); w.Code != http.StatusOK {
		t.Fatalf("first signup failed: %d %s", w.Code, w.Body.String())
	}

	body["confirm_password"] = "different1"
	if w := doJSON(t, s, http.MethodPost, "/signup", "", body); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for password mismatch, got %d", w.Code)
	}
	body["confirm_password"] = "secret123"

	body["phone"] = "0987654321"
	if w := doJSON(t, s, http.MethodPost, "/signup", "", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := setupTestServer(t)
	signupAndLogin(t, s, "bob@example.com")

	w := doJSON(t, s, http.MethodPost, "/login", "", map[string]string{
		"email":    "bob@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/session_status", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = doJSON(t, s, http.MethodGet, "/session_status", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bogus token, got %d", w.Code)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "carol@example.com")

	w := doJSON(t, s, http.MethodGet, "/session_status", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("session_status failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, s, http.MethodGet, "/active_sessions", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("active_sessions failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("expected 1 active session, got %v", data["total"])
	}

	if w = doJSON(t, s, http.MethodPost, "/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d %s", w.Code, w.Body.String())
	}

	// 注销后的令牌立即失效
	if w = doJSON(t, s, http.MethodGet, "/session_status", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

// 纯推理接口不要求登录
func TestDetectTextEmotionAnonymous(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/detect_text_emotion", "", map[string]string{"text": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %d", w.Code)
	}
	data := decodeData(t, w)
	if success, _ := data["success"].(bool); success {
		t.Fatalf("expected success=false on validation error")
	}

	w = doJSON(t, s, http.MethodPost, "/detect_text_emotion", "", map[string]string{"text": "12345"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for gibberish, got %d", w.Code)
	}

	w = doJSON(t, s, http.MethodPost, "/detect_text_emotion", "", map[string]string{"text": "I am so happy today!"})
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous detection failed: %d %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	dominant, _ := data["dominant_emotion"].(map[string]any)
	if dominant["label"] != "joy" {
		t.Fatalf("expected joy, got %v", dominant["label"])
	}
	if data["detected_language"] != "en" {
		t.Fatalf("expected detected_language en, got %v", data["detected_language"])
	}
	if success, _ := data["success"].(bool); !success {
		t.Fatalf("expected success=true on detection")
	}
}

func TestMultilangTextReturnsOriginalAndTranslated(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/multilang_text", "", map[string]string{"text": "I am so happy today!"})
	if w.Code != http.StatusOK {
		t.Fatalf("multilang detection failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if data["original_text"] != "I am so happy today!" {
		t.Fatalf("expected original_text echoed, got %v", data["original_text"])
	}
	if data["translated_text"] != "I am so happy today!" {
		t.Fatalf("expected translated_text present, got %v", data["translated_text"])
	}
}

func TestChatFlowPersistsHistoryAndStats(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "erin@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"message": "I am so happy today!"})
	if w.Code != http.StatusOK {
		t.Fatalf("chat failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if reply, _ := data["ai_response"].(string); reply == "" {
		t.Fatalf("expected non-empty AI response")
	}
	if data["user_message"] != "I am so happy today!" {
		t.Fatalf("expected user_message echoed, got %v", data["user_message"])
	}
	if data["emotion"] != "joy" {
		t.Fatalf("expected joy, got %v", data["emotion"])
	}
	if ts, _ := data["timestamp"].(string); ts == "" {
		t.Fatalf("expected timestamp in response")
	}

	w = doJSON(t, s, http.MethodGet, "/api/chat-history", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chat-history failed: %d %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("expected 1 history entry, got %v", data["total"])
	}

	w = doJSON(t, s, http.MethodGet, "/api/chat-stats?period=day", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("chat-stats failed: %d %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	stats, _ := data["stats"].(map[string]any)
	if stats["dominant_emotion"] != "joy" {
		t.Fatalf("expected joy dominant in stats, got %v", stats["dominant_emotion"])
	}
}

// 分析不出情绪的消息按中性降级,对话照常进行并落库
func TestChatDegradesToNeutralOnDetectionFailure(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "judy@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"message": "12345"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected degraded 200, got %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if data["emotion"] != "neutral" {
		t.Fatalf("expected neutral emotion, got %v", data["emotion"])
	}
	if score, _ := data["emotion_score"].(float64); score != 0.5 {
		t.Fatalf("expected score 0.5, got %v", data["emotion_score"])
	}
	if reply, _ := data["ai_response"].(string); reply == "" {
		t.Fatalf("expected non-empty fallback reply")
	}

	// 降级回合同样写入历史
	w = doJSON(t, s, http.MethodGet, "/api/chat-history", token, nil)
	data = decodeData(t, w)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("expected degraded turn persisted, got total %v", data["total"])
	}

	// 只有空消息还是 400
	if w = doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"message": "   "}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty message, got %d", w.Code)
	}
}

func TestGlobalChatRoundTrip(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "frank@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/global-chat", token, map[string]string{"message": "I am so happy today!"})
	if w.Code != http.StatusOK {
		t.Fatalf("global chat send failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if reply, _ := data["ai_response"].(string); reply == "" {
		t.Fatalf("expected non-empty AI reply")
	}

	// 用户消息加 AI 回复共两条
	w = doJSON(t, s, http.MethodGet, "/api/global-chat-history", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("global chat history failed: %d %s", w.Code, w.Body.String())
	}
	data = decodeData(t, w)
	if total, _ := data["total"].(float64); total != 2 {
		t.Fatalf("expected 2 messages, got %v", data["total"])
	}

	if w = doJSON(t, s, http.MethodPost, "/api/global-chat", token, map[string]string{}); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty submission, got %d", w.Code)
	}
}

func TestFaceEmotionResponseWithoutRemote(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "grace@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/face-emotion-response", token, map[string]any{
		"face_emotion": "happy",
		"message":      "look at my smile",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("face-emotion-response failed: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if reply, _ := data["ai_response"].(string); reply == "" {
		t.Fatalf("expected non-empty face emotion reply")
	}

	// AI 回复要出现在公共时间线上
	w = doJSON(t, s, http.MethodGet, "/api/global-chat-history", token, nil)
	data = decodeData(t, w)
	if total, _ := data["total"].(float64); total != 1 {
		t.Fatalf("expected AI reply in global chat, got %v", data["total"])
	}
}

func TestVisionEndpointsDisabled(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/detect_live_emotion", "", map[string]string{"image": "aGVsbG8="})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when vision disabled, got %d", w.Code)
	}
}

func TestExportChatReportStreamsWorkbook(t *testing.T) {
	s := setupTestServer(t)
	token := signupAndLogin(t, s, "ivan@example.com")

	if w := doJSON(t, s, http.MethodPost, "/api/chat", token, map[string]string{"message": "I am so happy today!"}); w.Code != http.StatusOK {
		t.Fatalf("chat failed: %d %s", w.Code, w.Body.String())
	}

	w := doJSON(t, s, http.MethodGet, "/api/export-chat-report", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed: %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected non-empty workbook body")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health failed: %d %s", w.Code, w.Body.String())
	}
}
