package roadmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractTopics_MarkerLines(t *testing.T) {
	content := "Core material for the week\n" +
		"• Variables and types\n" +
		"• Control flow\n" +
		"- Error handling\n" +
		"→ Writing tests\n"

	got := extractTopics(content)

	want := []string{"Variables and types", "Control flow", "Error handling", "Writing tests"}
	for _, topic := range want {
		if !containsTopic(got, topic) {
			t.Errorf("topics %v missing %q", got, topic)
		}
	}
}

func TestExtractTopics_VerbPhrases(t *testing.T) {
	content := "You will learn concurrency patterns in depth.\n" +
		"Then build a small web service from scratch."

	got := extractTopics(content)

	if !containsTopic(got, "concurrency patterns in depth.") {
		t.Errorf("topics %v missing verb-phrase capture", got)
	}
}

func TestExtractTopics_Dedup(t *testing.T) {
	content := "• Error Handling\n• error handling\n• ERROR HANDLING\n"

	got := extractTopics(content)

	count := 0
	for _, topic := range got {
		if strings.EqualFold(topic, "error handling") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one case-insensitive entry, got %v", got)
	}
	if len(got) > 0 && got[0] != "Error Handling" {
		t.Errorf("first occurrence should win, got %q", got[0])
	}
}

func TestExtractTopics_Cap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("• Topic number ")
		b.WriteByte(byte('a' + i))
		b.WriteString(" in the list\n")
	}

	got := extractTopics(b.String())

	if len(got) > maxExtractedTopics {
		t.Errorf("got %d topics, cap is %d", len(got), maxExtractedTopics)
	}
}

func TestExtractTopics_CapitalizedFallback(t *testing.T) {
	content := "Docker Compose and Kubernetes are covered alongside The basics."

	got := extractTopics(content)

	if !containsTopic(got, "Docker Compose") {
		t.Errorf("topics %v missing capitalized phrase", got)
	}
	if containsTopic(got, "The") {
		t.Errorf("stopword leaked into topics: %v", got)
	}
}

func TestExtractTopics_Deterministic(t *testing.T) {
	content := "• Alpha topic here\n• Beta topic here\nlearn something new every day"

	first := extractTopics(content)
	for i := 0; i < 5; i++ {
		if again := extractTopics(content); !reflect.DeepEqual(first, again) {
			t.Fatalf("extraction order unstable: %v vs %v", first, again)
		}
	}
}

func containsTopic(topics []string, want string) bool {
	for _, topic := range topics {
		if topic == want {
			return true
		}
	}
	return false
}
