package roadmap

import (
	"encoding/json"
	"regexp"
	"strings"
)

// BlockKind identifies a recognized structured block embedded in roadmap
// text. Generators often emit these as fenced JSON alongside the prose.
type BlockKind string

const (
	BlockResourcePack BlockKind = "resource_pack"
	BlockDailyPlan    BlockKind = "daily_plan"
	BlockQuiz         BlockKind = "quiz"
	BlockTimeline     BlockKind = "timeline"
)

var knownBlockKinds = []BlockKind{BlockResourcePack, BlockDailyPlan, BlockQuiz, BlockTimeline}

var fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*(.*?)```")
var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// Labels generators write ahead of a fence, used to classify blocks whose
// payload carries no recognized top-level key ("Resource Pack (JSON): ...").
var blockLabels = map[BlockKind]*regexp.Regexp{
	BlockResourcePack: regexp.MustCompile(`(?i)resource[ _]?pack`),
	BlockDailyPlan:    regexp.MustCompile(`(?i)daily[ _](?:action[ _])?plan`),
	BlockQuiz:         regexp.MustCompile(`(?i)quiz`),
	BlockTimeline:     regexp.MustCompile(`(?i)timeline`),
}

// ExtractJSONBlocks scans text for fenced JSON blocks and classifies each
// valid one, first by its top-level key and otherwise by the label line
// preceding the fence. Malformed blocks are skipped, never fatal; the first
// block of each kind wins.
func ExtractJSONBlocks(text string) map[BlockKind]json.RawMessage {
	blocks := map[BlockKind]json.RawMessage{}
	for _, m := range fencedJSONBlock.FindAllStringSubmatchIndex(text, -1) {
		payload := cleanJSONString(text[m[2]:m[3]])
		var parsed map[string]json.RawMessage
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			continue
		}
		keyed := false
		for _, kind := range knownBlockKinds {
			raw, ok := parsed[string(kind)]
			if !ok {
				continue
			}
			keyed = true
			if _, exists := blocks[kind]; !exists {
				blocks[kind] = raw
			}
		}
		if keyed {
			continue
		}
		label := lastLineBefore(text, m[0])
		for _, kind := range knownBlockKinds {
			if !blockLabels[kind].MatchString(label) {
				continue
			}
			if _, exists := blocks[kind]; !exists {
				blocks[kind] = json.RawMessage(payload)
			}
			break
		}
	}
	return blocks
}

// lastLineBefore returns the closest non-blank line ending before offset.
func lastLineBefore(text string, offset int) string {
	head := strings.TrimRight(text[:offset], " \t\r\n")
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return head
}

// cleanJSONString strips leftover fences and the trailing commas that
// generators tend to leave before closing braces.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = trailingComma.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
