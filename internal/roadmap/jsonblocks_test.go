package roadmap

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONBlocks(t *testing.T) {
	text := "Day 1: Introduction\nSome lesson text.\n" +
		"```json\n{\"resource_pack\": {\"videos\": [\"intro\"],}}\n```\n" +
		"More prose between blocks.\n" +
		"```json\n{\"daily_plan\": [{\"day\": 1, \"task\": \"read\"},]}\n```\n"

	blocks := ExtractJSONBlocks(text)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if _, ok := blocks[BlockResourcePack]; !ok {
		t.Error("resource_pack block missing")
	}
	if _, ok := blocks[BlockDailyPlan]; !ok {
		t.Error("daily_plan block missing")
	}

	var plan []map[string]any
	if err := json.Unmarshal(blocks[BlockDailyPlan], &plan); err != nil {
		t.Fatalf("daily_plan payload not valid JSON after cleaning: %v", err)
	}
	if len(plan) != 1 || plan[0]["task"] != "read" {
		t.Errorf("unexpected daily plan payload: %v", plan)
	}
}

func TestExtractJSONBlocks_LabelledBlocks(t *testing.T) {
	// No top-level kind keys; classification has to come from the label line
	// ahead of each fence.
	text := "Resource Pack (JSON):\n" +
		"```json\n{\"youtube\": [\"intro video\"], \"articles\": []}\n```\n" +
		"\n" +
		"Daily Action Plan (JSON):\n" +
		"```json\n{\"day_1\": \"read the first chapter\"}\n```\n" +
		"```json\n{\"unlabelled\": true}\n```\n"

	blocks := ExtractJSONBlocks(text)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	var pack map[string]json.RawMessage
	if err := json.Unmarshal(blocks[BlockResourcePack], &pack); err != nil {
		t.Fatalf("resource_pack payload not valid JSON: %v", err)
	}
	if _, ok := pack["youtube"]; !ok {
		t.Errorf("resource_pack payload missing content: %v", pack)
	}
	if _, ok := blocks[BlockDailyPlan]; !ok {
		t.Error("daily_plan block missing")
	}
}

func TestExtractJSONBlocks_Malformed(t *testing.T) {
	text := "```json\nnot json at all\n```\n```json\n{\"quiz\": {\"questions\": []}}\n```"

	blocks := ExtractJSONBlocks(text)

	if len(blocks) != 1 {
		t.Fatalf("expected only the valid block, got %v", blocks)
	}
	if _, ok := blocks[BlockQuiz]; !ok {
		t.Error("quiz block missing")
	}
}

func TestExtractJSONBlocks_FirstBlockWins(t *testing.T) {
	text := "```json\n{\"timeline\": {\"weeks\": 1}}\n```\n```json\n{\"timeline\": {\"weeks\": 9}}\n```"

	blocks := ExtractJSONBlocks(text)

	var timeline map[string]int
	if err := json.Unmarshal(blocks[BlockTimeline], &timeline); err != nil {
		t.Fatal(err)
	}
	if timeline["weeks"] != 1 {
		t.Errorf("weeks = %d, want first block's value", timeline["weeks"])
	}
}

func TestExtractJSONBlocks_NoBlocks(t *testing.T) {
	if blocks := ExtractJSONBlocks("plain text, no fences"); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %v", blocks)
	}
}

func TestCleanJSONString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing comma object", `{"a": 1,}`, `{"a": 1}`},
		{"trailing comma array", `[1, 2, 3,]`, `[1, 2, 3]`},
		{"leftover fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"already clean", `{"a": 1}`, `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONString(tt.input); got != tt.want {
				t.Errorf("cleanJSONString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
