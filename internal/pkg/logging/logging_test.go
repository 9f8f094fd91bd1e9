package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/adiazny/ttp-slot-checker/internal/pkg/logging"
)

func TestNewEntry_JSON(t *testing.T) {
	var buf bytes.Buffer

	logging.NewEntry(&buf, true).Info("starting up")

	line := map[string]interface{}{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}

	if line["msg"] != "starting up" || line["level"] != "info" || line["component"] != logging.Component {
		t.Errorf("unexpected log line %v", line)
	}

	if _, ok := line["time"]; !ok {
		t.Error("log line has no timestamp")
	}

	if _, err := uuid.Parse(line["run_id"].(string)); err != nil {
		t.Errorf("run_id is not a uuid: %v", err)
	}
}

func TestNewEntry_Text(t *testing.T) {
	var buf bytes.Buffer

	logging.NewEntry(&buf, false).Info("No openings for Blaine")

	out := buf.String()
	for _, want := range []string{"level=info", `msg="No openings for Blaine"`, "component=" + logging.Component, "time="} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}
