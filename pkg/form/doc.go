// Package form hosts validator rules over the live state of a form.
//
// A Group declares fields with their rules plus whole-form validators such as
// Match. Each pass recomputes a field's marker set from its own rules and then
// lets the whole-form validators add or remove their markers without touching
// the kinds they do not own.
//
// # Field Rules
//
// Required, MinLength, MaxLength, Email, CPF and Date wrap the rules of
// package validator. Only Required looks at empty values; every other rule
// passes when the field is empty, so optional fields need no special casing.
// Rules are combined rather than short-circuited: a field that is both too
// long and fails its checksum carries both markers.
//
// # Whole-form Validators
//
// Match(source, target) compares two fields. When they differ it attaches
// "comparacao" to the target and returns it; when they agree, or the target is
// empty, it removes only that marker and leaves others such as "minlength" in
// place. The source field is never modified.
//
// # Usage
//
//	g := form.New(
//	    form.Field("cpf", form.Required(), form.CPF()),
//	    form.Field("celular", form.MinLength(10), form.MaxLength(16)),
//	    form.Field("senha", form.Required(), form.MinLength(6)),
//	    form.Field("confirmaSenha", form.Required(), form.MinLength(6)),
//	    form.WithValidator(form.Match("senha", "confirmaSenha")),
//	)
//
//	c := g.Bind(map[string]string{
//	    "cpf":           "529.982.247-25",
//	    "senha":         "abc123",
//	    "confirmaSenha": "xyz999",
//	})
//	c.Valid()                 // false
//	c.Errors("confirmaSenha") // {"comparacao": true}
//	c.Errors("celular")       // nil, empty optional field
//
// A single field can be re-checked as the user types; the whole-form
// validators run again so markers stay consistent:
//
//	g.ValidateField(c, "confirmaSenha", "abc123")
//	c.Errors("confirmaSenha") // nil
//
// # Concurrency
//
// Groups are immutable after New and can be shared. Containers are
// single-writer: run one pass at a time per container.
package form
