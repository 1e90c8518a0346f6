// Package planner implements the trip-plan response pipeline: extracting a
// JSON object out of raw generator output, normalizing it into the plan
// schema, and deduplicating grounding attributions.
package planner

import (
	"encoding/json"
	"strings"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
)

// ExtractJSON locates and parses the single JSON object embedded in raw
// generator output. The text may include leading/trailing commentary, a
// markdown code fence, or be truncated mid-object.
//
// Failure kinds are distinct: a response with no object or with unbalanced
// braces (truncation) yields MalformedResponseError, while a located
// candidate that fails to parse yields InvalidJSONError.
func ExtractJSON(raw string) (json.RawMessage, error) {
	working := raw
	if fenced, ok := fencedBlock(raw); ok {
		working = fenced
	}

	start := strings.IndexByte(working, '{')
	if start == -1 {
		return nil, apperrors.MalformedResponse("no JSON object found in response")
	}

	end, err := matchBraces(working, start)
	if err != nil {
		return nil, err
	}

	candidate := json.RawMessage(working[start : end+1])

	// The candidate must parse as a top-level object before it reaches the
	// normalizer.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &top); err != nil {
		return nil, apperrors.InvalidJSON(err)
	}

	return candidate, nil
}

// fencedBlock returns the content of the first complete markdown code fence
// (``` or ```json) in s. An unterminated fence does not count; the caller
// then scans the full text.
func fencedBlock(s string) (string, bool) {
	open := strings.Index(s, "```")
	if open == -1 {
		return "", false
	}

	rest := s[open+3:]
	nl := strings.IndexByte(rest, '\n')
	if nl == -1 {
		return "", false
	}

	body := rest[nl+1:]
	closing := strings.Index(body, "```")
	if closing == -1 {
		return "", false
	}

	return body[:closing], true
}

// matchBraces scans forward from the opening brace at start and returns the
// index of the matching closing brace. The scan is lexical: it tracks string
// and escape state so braces inside string literals never affect depth.
// Truncated input, including an unterminated string, fails closed.
func matchBraces(s string, start int) (int, error) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, apperrors.MalformedResponse("braces never balanced; the generation may have been truncated")
}
