package form

import (
	"maps"

	"github.com/appcadastro/registro/pkg/validator"
)

// Container is the live state of a form: field values and the marker set of
// every field that currently fails a rule. It is not safe for concurrent
// mutation; hosts run one validation pass at a time.
type Container struct {
	values map[string]string
	errors map[string]validator.Result
}

// NewContainer copies values into a fresh container with no errors.
func NewContainer(values map[string]string) *Container {
	c := &Container{
		values: make(map[string]string, len(values)),
		errors: make(map[string]validator.Result),
	}
	maps.Copy(c.values, values)
	return c
}

// Value returns the field value, or "" when the field is absent.
func (c *Container) Value(name string) string {
	return c.values[name]
}

func (c *Container) Set(name, value string) {
	c.values[name] = value
}

// Values returns a copy of all field values.
func (c *Container) Values() map[string]string {
	return maps.Clone(c.values)
}

// Errors returns the marker set of a field; nil when the field is valid.
func (c *Container) Errors(name string) validator.Result {
	return c.errors[name]
}

// SetErrors replaces the marker set of a field. An empty set clears it.
func (c *Container) SetErrors(name string, res validator.Result) {
	if len(res) == 0 {
		delete(c.errors, name)
		return
	}
	c.errors[name] = maps.Clone(res)
}

// AddError attaches kind to the field, keeping markers already present.
func (c *Container) AddError(name string, kind validator.Kind) {
	res := c.errors[name]
	if res == nil {
		res = make(validator.Result)
		c.errors[name] = res
	}
	res[kind] = true
}

// RemoveError detaches kind from the field and leaves every other marker in place.
func (c *Container) RemoveError(name string, kind validator.Kind) {
	res, ok := c.errors[name]
	if !ok {
		return
	}
	delete(res, kind)
	if len(res) == 0 {
		delete(c.errors, name)
	}
}

func (c *Container) FieldValid(name string) bool {
	return len(c.errors[name]) == 0
}

func (c *Container) Valid() bool {
	return len(c.errors) == 0
}

// AllErrors returns a copy of every field's marker set.
func (c *Container) AllErrors() map[string]validator.Result {
	out := make(map[string]validator.Result, len(c.errors))
	for name, res := range c.errors {
		out[name] = maps.Clone(res)
	}
	return out
}
