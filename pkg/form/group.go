package form

import "github.com/appcadastro/registro/pkg/validator"

type field struct {
	name  string
	rules []FieldRule
}

// Group declares the fields of a form, their rules and the whole-form validators.
type Group struct {
	fields     []field
	validators []GroupValidator
}

// Option configures a Group.
type Option func(*Group)

// Field declares a field with its rules. All rules run on every pass and each
// failing rule contributes its own marker. Declaring the same name twice
// appends the rules to the first declaration.
func Field(name string, rules ...FieldRule) Option {
	return func(g *Group) {
		for i := range g.fields {
			if g.fields[i].name == name {
				g.fields[i].rules = append(g.fields[i].rules, rules...)
				return
			}
		}
		g.fields = append(g.fields, field{name: name, rules: rules})
	}
}

// WithValidator registers a whole-form validator. Validators run after the
// field rules, in registration order.
func WithValidator(v GroupValidator) Option {
	return func(g *Group) {
		if v != nil {
			g.validators = append(g.validators, v)
		}
	}
}

func New(opts ...Option) *Group {
	g := &Group{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fields returns the declared field names in declaration order.
func (g *Group) Fields() []string {
	names := make([]string, len(g.fields))
	for i, f := range g.fields {
		names[i] = f.name
	}
	return names
}

// Bind builds a container holding every declared field (missing ones are "")
// and validates it. Values for undeclared fields are dropped.
func (g *Group) Bind(values map[string]string) *Container {
	c := NewContainer(nil)
	for _, f := range g.fields {
		c.Set(f.name, values[f.name])
	}
	g.Validate(c)
	return c
}

// Validate runs one full pass: each declared field's markers are recomputed
// from its rules, then the group validators merge their markers on top.
// It reports whether the form is valid afterwards.
func (g *Group) Validate(c *Container) bool {
	for _, f := range g.fields {
		c.SetErrors(f.name, g.check(f, c.Value(f.name)))
	}
	for _, v := range g.validators {
		v(c)
	}
	return c.Valid()
}

// ValidateField re-runs the rules of a single field followed by the group
// validators, the way a host reacts to one value change.
func (g *Group) ValidateField(c *Container, name, value string) validator.Result {
	c.Set(name, value)
	for _, f := range g.fields {
		if f.name == name {
			c.SetErrors(name, g.check(f, value))
			break
		}
	}
	for _, v := range g.validators {
		v(c)
	}
	return c.Errors(name)
}

func (g *Group) check(f field, value string) validator.Result {
	var res validator.Result
	for _, rule := range f.rules {
		r := rule(f.name, value)
		if r.Check() {
			continue
		}
		if res == nil {
			res = make(validator.Result)
		}
		kind := r.Error.Kind
		if kind == "" {
			kind = validator.KindInvalid
		}
		res[kind] = true
	}
	return res
}
