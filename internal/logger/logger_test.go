package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "info", Format: "json", Output: &buf})
	log.Infof("импорт завершен за %d секунд", 3)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("вывод не является JSON: %v (%s)", err, buf.String())
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["message"] != "импорт завершен за 3 секунд" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("в записи нет отметки времени")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "warn", Format: "json", Output: &buf})
	log.Infof("не должно попасть в вывод")
	if buf.Len() != 0 {
		t.Errorf("info-запись прошла через уровень warn: %s", buf.String())
	}
	log.Warnf("должно попасть")
	if buf.Len() == 0 {
		t.Error("warn-запись не прошла")
	}
}

func TestErrorfIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "info", Format: "json", Output: &buf})
	log.Errorf(errors.New("connection refused"), "запрос не выполнен")
	if !strings.Contains(buf.String(), "connection refused") {
		t.Errorf("в записи нет текста ошибки: %s", buf.String())
	}
}

func TestRequestFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "info", Format: "json", Output: &buf})
	log.Request("GET", "/api/attractions", 200, 5*time.Millisecond)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("вывод не является JSON: %v", err)
	}
	if entry["method"] != "GET" || entry["path"] != "/api/attractions" {
		t.Errorf("entry = %v", entry)
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v, want 200", entry["status"])
	}
}

func TestNilConfigDefaults(t *testing.T) {
	// nil-конфигурация не должна приводить к панике
	log := New(nil)
	if log == nil {
		t.Fatal("New(nil) вернул nil")
	}
}
