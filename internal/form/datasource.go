// Package form implements the table data source backing a displayed form
// step: section/row lookups, answer tracking, selection toggling, and step
// result assembly.
package form

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldstudy/formsource/pkg/types"
)

// itemGroup holds the runtime state of one question: its rows and the
// current answer. Choice questions keep the selection state on the items;
// the answer value is derived from it.
type itemGroup struct {
	question   types.Question
	items      []types.TableItem
	answer     any
	answered   bool
	answeredAt time.Time
}

// section mirrors one definition section of the step.
type section struct {
	title  string
	groups []*itemGroup
}

// DataSource tracks the answers of one displayed form step. Create it when
// the step comes on screen and discard it on dismissal. Not safe for
// concurrent use; all access happens on the UI thread.
type DataSource struct {
	step      types.Step
	sections  []section
	byID      map[string]*itemGroup
	startedAt time.Time
}

var _ types.DataSource = (*DataSource)(nil)

// NewDataSource builds a data source from a form step. Returns
// types.ErrNotFormStep for other step types and the step's own validation
// error when the definition is malformed.
func NewDataSource(step types.Step) (*DataSource, error) {
	if step.Type != types.StepTypeForm {
		return nil, types.ErrNotFormStep
	}
	if err := step.Validate(); err != nil {
		return nil, err
	}

	ds := &DataSource{
		step:      step,
		byID:      make(map[string]*itemGroup),
		startedAt: time.Now(),
	}
	for _, sec := range step.Sections {
		s := section{title: sec.Title}
		for _, q := range sec.Questions {
			g := &itemGroup{question: q, items: buildItems(q)}
			s.groups = append(s.groups, g)
			ds.byID[q.Identifier] = g
		}
		ds.sections = append(ds.sections, s)
	}
	return ds, nil
}

// buildItems creates the table rows for a question: one choice row per
// choice, or a single entry row for value questions.
func buildItems(q types.Question) []types.TableItem {
	if types.IsChoiceAnswerType(q.AnswerType) {
		items := make([]types.TableItem, 0, len(q.Choices))
		for _, c := range q.Choices {
			items = append(items, types.TableItem{
				Kind:               types.ItemKindChoice,
				QuestionIdentifier: q.Identifier,
				Text:               c.Text,
				Detail:             c.Detail,
				Choice:             c,
			})
		}
		return items
	}
	return []types.TableItem{{
		Kind:               types.ItemKindEntry,
		QuestionIdentifier: q.Identifier,
		Text:               q.Prompt,
		Detail:             q.Placeholder,
	}}
}

// NumSections returns the number of sections.
func (ds *DataSource) NumSections() int {
	return len(ds.sections)
}

// NumRows returns the number of rows in the given section.
// Returns types.ErrIndexOutOfRange if the section index is invalid.
func (ds *DataSource) NumRows(sec int) (int, error) {
	if sec < 0 || sec >= len(ds.sections) {
		return 0, types.ErrIndexOutOfRange
	}
	n := 0
	for _, g := range ds.sections[sec].groups {
		n += len(g.items)
	}
	return n, nil
}

// SectionTitle returns the title of the given section.
// Returns types.ErrIndexOutOfRange if the section index is invalid.
func (ds *DataSource) SectionTitle(sec int) (string, error) {
	if sec < 0 || sec >= len(ds.sections) {
		return "", types.ErrIndexOutOfRange
	}
	return ds.sections[sec].title, nil
}

// locate resolves an index path to its group and the row offset within it.
func (ds *DataSource) locate(ip types.IndexPath) (*itemGroup, int, error) {
	if ip.Section < 0 || ip.Section >= len(ds.sections) || ip.Row < 0 {
		return nil, 0, types.ErrIndexOutOfRange
	}
	row := ip.Row
	for _, g := range ds.sections[ip.Section].groups {
		if row < len(g.items) {
			return g, row, nil
		}
		row -= len(g.items)
	}
	return nil, 0, types.ErrIndexOutOfRange
}

// ItemAt returns the table item at the given index path.
// Returns types.ErrIndexOutOfRange if the path is invalid.
func (ds *DataSource) ItemAt(ip types.IndexPath) (types.TableItem, error) {
	g, row, err := ds.locate(ip)
	if err != nil {
		return types.TableItem{}, err
	}
	return g.items[row], nil
}

// QuestionAt returns the question that owns the row at the given index path.
// Returns types.ErrIndexOutOfRange if the path is invalid.
func (ds *DataSource) QuestionAt(ip types.IndexPath) (types.Question, error) {
	g, _, err := ds.locate(ip)
	if err != nil {
		return types.Question{}, err
	}
	return g.question, nil
}

// GroupForQuestion returns the question definition and the index paths of
// its rows. Returns types.ErrQuestionNotFound for unknown identifiers.
func (ds *DataSource) GroupForQuestion(identifier string) (types.Question, []types.IndexPath, error) {
	g, ok := ds.byID[identifier]
	if !ok {
		return types.Question{}, nil, types.ErrQuestionNotFound
	}
	return g.question, ds.pathsFor(g), nil
}

// pathsFor returns the index paths of a group's rows in display order.
func (ds *DataSource) pathsFor(target *itemGroup) []types.IndexPath {
	for si, sec := range ds.sections {
		row := 0
		for _, g := range sec.groups {
			if g == target {
				paths := make([]types.IndexPath, 0, len(g.items))
				for i := range g.items {
					paths = append(paths, types.IndexPath{Section: si, Row: row + i})
				}
				return paths
			}
			row += len(g.items)
		}
	}
	return nil
}

// groups returns all item groups in display order.
func (ds *DataSource) groups() []*itemGroup {
	var out []*itemGroup
	for _, sec := range ds.sections {
		out = append(out, sec.groups...)
	}
	return out
}

// IsComplete reports whether every non-optional question has an answer.
func (ds *DataSource) IsComplete() bool {
	for _, g := range ds.groups() {
		if !g.question.Optional && !g.answered {
			return false
		}
	}
	return true
}

// MissingAnswers returns the identifiers of non-optional questions that have
// no answer yet, in display order.
func (ds *DataSource) MissingAnswers() []string {
	missing := []string{}
	for _, g := range ds.groups() {
		if !g.question.Optional && !g.answered {
			missing = append(missing, g.question.Identifier)
		}
	}
	return missing
}

// Validate returns nil when the step is complete. Otherwise it returns
// types.ErrMissingAnswer wrapped with the identifier of the first
// non-optional question that has no answer.
func (ds *DataSource) Validate() error {
	for _, g := range ds.groups() {
		if !g.question.Optional && !g.answered {
			return fmt.Errorf("%w: %s", types.ErrMissingAnswer, g.question.Identifier)
		}
	}
	return nil
}

// Result assembles the step result from the recorded answers. Answered
// questions appear in display order; a data source with no answers yields a
// result with zero question results.
func (ds *DataSource) Result() types.StepResult {
	questions := []types.QuestionResult{}
	for _, g := range ds.groups() {
		if !g.answered {
			continue
		}
		questions = append(questions, types.QuestionResult{
			Identifier: g.question.Identifier,
			AnswerType: g.question.AnswerType,
			Value:      g.answer,
			AnsweredAt: g.answeredAt,
		})
	}
	return types.StepResult{
		RunID:          uuid.New(),
		StepIdentifier: ds.step.Identifier,
		StartedAt:      ds.startedAt,
		EndedAt:        time.Now(),
		Questions:      questions,
	}
}
