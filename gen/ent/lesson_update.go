// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/coursekit/roadmap-parser/gen/ent/course"
	"github.com/coursekit/roadmap-parser/gen/ent/lesson"
	"github.com/coursekit/roadmap-parser/gen/ent/predicate"
	"github.com/google/uuid"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdate) SetCourseID(v uuid.UUID) *LessonUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCourseID(v *uuid.UUID) *LessonUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLessonNumber sets the "lesson_number" field.
func (_u *LessonUpdate) SetLessonNumber(v int) *LessonUpdate {
	_u.mutation.ResetLessonNumber()
	_u.mutation.SetLessonNumber(v)
	return _u
}

// SetNillableLessonNumber sets the "lesson_number" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLessonNumber(v *int) *LessonUpdate {
	if v != nil {
		_u.SetLessonNumber(*v)
	}
	return _u
}

// AddLessonNumber adds value to the "lesson_number" field.
func (_u *LessonUpdate) AddLessonNumber(v int) *LessonUpdate {
	_u.mutation.AddLessonNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *LessonUpdate) SetTopics(v []string) *LessonUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *LessonUpdate) AppendTopics(v []string) *LessonUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *LessonUpdate) ClearTopics() *LessonUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *LessonUpdate) SetDuration(v string) *LessonUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDuration(v *string) *LessonUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonUpdate) SetContent(v string) *LessonUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableContent(v *string) *LessonUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSkillTags sets the "skill_tags" field.
func (_u *LessonUpdate) SetSkillTags(v []string) *LessonUpdate {
	_u.mutation.SetSkillTags(v)
	return _u
}

// AppendSkillTags appends value to the "skill_tags" field.
func (_u *LessonUpdate) AppendSkillTags(v []string) *LessonUpdate {
	_u.mutation.AppendSkillTags(v)
	return _u
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (_u *LessonUpdate) ClearSkillTags() *LessonUpdate {
	_u.mutation.ClearSkillTags()
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonUpdate) SetResources(v json.RawMessage) *LessonUpdate {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonUpdate) AppendResources(v json.RawMessage) *LessonUpdate {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonUpdate) ClearResources() *LessonUpdate {
	_u.mutation.ClearResources()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *LessonUpdate) SetCourse(v *Course) *LessonUpdate {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *LessonUpdate) ClearCourse() *LessonUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.LessonNumber(); ok {
		if err := lesson.LessonNumberValidator(v); err != nil {
			return &ValidationError{Name: "lesson_number", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := lesson.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Lesson.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := lesson.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Lesson.content": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.course"`)
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonNumber(); ok {
		_spec.SetField(lesson.FieldLessonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonNumber(); ok {
		_spec.AddField(lesson.FieldLessonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(lesson.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(lesson.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(lesson.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTags(); ok {
		_spec.SetField(lesson.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldSkillTags, value)
		})
	}
	if _u.mutation.SkillTagsCleared() {
		_spec.ClearField(lesson.FieldSkillTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lesson.FieldResources, field.TypeJSON)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CourseTable,
			Columns: []string{lesson.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CourseTable,
			Columns: []string{lesson.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdateOne) SetCourseID(v uuid.UUID) *LessonUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCourseID(v *uuid.UUID) *LessonUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetLessonNumber sets the "lesson_number" field.
func (_u *LessonUpdateOne) SetLessonNumber(v int) *LessonUpdateOne {
	_u.mutation.ResetLessonNumber()
	_u.mutation.SetLessonNumber(v)
	return _u
}

// SetNillableLessonNumber sets the "lesson_number" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLessonNumber(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetLessonNumber(*v)
	}
	return _u
}

// AddLessonNumber adds value to the "lesson_number" field.
func (_u *LessonUpdateOne) AddLessonNumber(v int) *LessonUpdateOne {
	_u.mutation.AddLessonNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTopics sets the "topics" field.
func (_u *LessonUpdateOne) SetTopics(v []string) *LessonUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *LessonUpdateOne) AppendTopics(v []string) *LessonUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *LessonUpdateOne) ClearTopics() *LessonUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *LessonUpdateOne) SetDuration(v string) *LessonUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDuration(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonUpdateOne) SetContent(v string) *LessonUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableContent(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSkillTags sets the "skill_tags" field.
func (_u *LessonUpdateOne) SetSkillTags(v []string) *LessonUpdateOne {
	_u.mutation.SetSkillTags(v)
	return _u
}

// AppendSkillTags appends value to the "skill_tags" field.
func (_u *LessonUpdateOne) AppendSkillTags(v []string) *LessonUpdateOne {
	_u.mutation.AppendSkillTags(v)
	return _u
}

// ClearSkillTags clears the value of the "skill_tags" field.
func (_u *LessonUpdateOne) ClearSkillTags() *LessonUpdateOne {
	_u.mutation.ClearSkillTags()
	return _u
}

// SetResources sets the "resources" field.
func (_u *LessonUpdateOne) SetResources(v json.RawMessage) *LessonUpdateOne {
	_u.mutation.SetResources(v)
	return _u
}

// AppendResources appends value to the "resources" field.
func (_u *LessonUpdateOne) AppendResources(v json.RawMessage) *LessonUpdateOne {
	_u.mutation.AppendResources(v)
	return _u
}

// ClearResources clears the value of the "resources" field.
func (_u *LessonUpdateOne) ClearResources() *LessonUpdateOne {
	_u.mutation.ClearResources()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *LessonUpdateOne) SetCourse(v *Course) *LessonUpdateOne {
	return _u.SetCourseID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *LessonUpdateOne) ClearCourse() *LessonUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.LessonNumber(); ok {
		if err := lesson.LessonNumberValidator(v); err != nil {
			return &ValidationError{Name: "lesson_number", err: fmt.Errorf(`ent: validator failed for field "Lesson.lesson_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := lesson.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Lesson.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := lesson.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Lesson.content": %w`, err)}
		}
	}
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Lesson.course"`)
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonNumber(); ok {
		_spec.SetField(lesson.FieldLessonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonNumber(); ok {
		_spec.AddField(lesson.FieldLessonNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(lesson.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(lesson.FieldTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(lesson.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lesson.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTags(); ok {
		_spec.SetField(lesson.FieldSkillTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldSkillTags, value)
		})
	}
	if _u.mutation.SkillTagsCleared() {
		_spec.ClearField(lesson.FieldSkillTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resources(); ok {
		_spec.SetField(lesson.FieldResources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldResources, value)
		})
	}
	if _u.mutation.ResourcesCleared() {
		_spec.ClearField(lesson.FieldResources, field.TypeJSON)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CourseTable,
			Columns: []string{lesson.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.CourseTable,
			Columns: []string{lesson.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
