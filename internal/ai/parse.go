package ai

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	fencePattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")
	scorePattern = regexp.MustCompile(`(?i)"?score"?\s*[:=]\s*(-?\d+(?:\.\d+)?)`)
)

type matchReply struct {
	Score   *float64    `json:"score"`
	Reasons interface{} `json:"reasons"`
}

// ParseMatchReply достает оценку из ответа модели: JSON (в т.ч. внутри ```-блока),
// затем regex "score: N". ok=false, если оценку найти не удалось.
func ParseMatchReply(reply string) (score int, reasons []string, ok bool) {
	body := strings.TrimSpace(reply)
	if m := fencePattern.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	if candidate := jsonCandidate(body); candidate != "" {
		var parsed matchReply
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil && parsed.Score != nil {
			return clamp(*parsed.Score), reasonList(parsed.Reasons), true
		}

		var list []matchReply
		if err := json.Unmarshal([]byte(candidate), &list); err == nil && len(list) > 0 && list[0].Score != nil {
			return clamp(*list[0].Score), reasonList(list[0].Reasons), true
		}
	}

	if m := scorePattern.FindStringSubmatch(body); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return clamp(v), nil, true
		}
	}
	return 0, nil, false
}

// jsonCandidate вырезает первый объект или массив верхнего уровня
func jsonCandidate(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}

func reasonList(raw interface{}) []string {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}

func clamp(v float64) int {
	if math.IsNaN(v) {
		return DefaultScore
	}
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}
