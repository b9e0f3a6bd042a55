package form

import (
	"time"

	"github.com/fieldstudy/formsource/pkg/types"
)

// Date answers accept either a full RFC 3339 timestamp or a bare date.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// SaveAnswer validates value against the question's answer type and
// constraints and records it. For choice questions the row selection state
// is synchronized with the saved value. Returns types.ErrQuestionNotFound
// for unknown identifiers and types.ErrInvalidAnswer for values that fail
// validation; on error the previous answer is untouched.
func (ds *DataSource) SaveAnswer(identifier string, value any) error {
	g, ok := ds.byID[identifier]
	if !ok {
		return types.ErrQuestionNotFound
	}

	normalized, err := normalizeAnswer(g.question, value)
	if err != nil {
		return err
	}

	g.answer = normalized
	g.answered = true
	g.answeredAt = time.Now()

	if types.IsChoiceAnswerType(g.question.AnswerType) {
		g.syncSelection()
	}
	return nil
}

// Answer returns the recorded answer for the question and whether one has
// been recorded. Returns types.ErrQuestionNotFound for unknown identifiers.
func (ds *DataSource) Answer(identifier string) (any, bool, error) {
	g, ok := ds.byID[identifier]
	if !ok {
		return nil, false, types.ErrQuestionNotFound
	}
	return g.answer, g.answered, nil
}

// ClearAnswer removes the recorded answer for the question, including any
// row selections. Returns types.ErrQuestionNotFound for unknown
// identifiers. Idempotent.
func (ds *DataSource) ClearAnswer(identifier string) error {
	g, ok := ds.byID[identifier]
	if !ok {
		return types.ErrQuestionNotFound
	}
	g.answer = nil
	g.answered = false
	g.answeredAt = time.Time{}
	for i := range g.items {
		g.items[i].Selected = false
	}
	return nil
}

// normalizeAnswer checks value against the question's answer type and
// constraints and returns the canonical representation: string, []string,
// int64, float64, or bool.
func normalizeAnswer(q types.Question, value any) (any, error) {
	switch q.AnswerType {
	case types.AnswerTypeText:
		s, ok := value.(string)
		if !ok {
			return nil, types.ErrInvalidAnswer
		}
		if q.MaxLength > 0 && len(s) > q.MaxLength {
			return nil, types.ErrInvalidAnswer
		}
		return s, nil

	case types.AnswerTypeInteger, types.AnswerTypeScale:
		n, ok := integerValue(value)
		if !ok || !inRange(float64(n), q.Minimum, q.Maximum) {
			return nil, types.ErrInvalidAnswer
		}
		return n, nil

	case types.AnswerTypeDecimal:
		f, ok := decimalValue(value)
		if !ok || !inRange(f, q.Minimum, q.Maximum) {
			return nil, types.ErrInvalidAnswer
		}
		return f, nil

	case types.AnswerTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, types.ErrInvalidAnswer
		}
		return b, nil

	case types.AnswerTypeDate:
		s, ok := value.(string)
		if !ok {
			return nil, types.ErrInvalidAnswer
		}
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return s, nil
			}
		}
		return nil, types.ErrInvalidAnswer

	case types.AnswerTypeSingleChoice:
		s, ok := value.(string)
		if !ok {
			return nil, types.ErrInvalidAnswer
		}
		if _, ok := q.ChoiceForValue(s); !ok {
			return nil, types.ErrInvalidAnswer
		}
		return s, nil

	case types.AnswerTypeMultipleChoice:
		values, ok := stringSlice(value)
		if !ok || len(values) == 0 {
			return nil, types.ErrInvalidAnswer
		}
		seen := make(map[string]bool, len(values))
		out := make([]string, 0, len(values))
		exclusive := false
		for _, v := range values {
			c, ok := q.ChoiceForValue(v)
			if !ok {
				return nil, types.ErrInvalidAnswer
			}
			if seen[v] {
				continue
			}
			seen[v] = true
			if c.Exclusive {
				exclusive = true
			}
			out = append(out, v)
		}
		// An exclusive choice stands alone; row taps can never combine
		// it with others, and saved values must not either.
		if exclusive && len(out) > 1 {
			return nil, types.ErrInvalidAnswer
		}
		return out, nil
	}
	return nil, types.ErrInvalidAnswerType
}

// integerValue converts numeric inputs to int64. Floats are accepted only
// when integral, so JSON-decoded numbers round-trip.
func integerValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// decimalValue converts numeric inputs to float64.
func decimalValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// stringSlice converts []string or []any-of-strings inputs.
func stringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// inRange checks a numeric value against optional bounds.
func inRange(v float64, minimum, maximum *float64) bool {
	if minimum != nil && v < *minimum {
		return false
	}
	if maximum != nil && v > *maximum {
		return false
	}
	return true
}
