package form

import "github.com/appcadastro/registro/pkg/validator"

// GroupValidator is a whole-form rule. It reads any fields it needs, records
// its markers on the container and returns what it found.
type GroupValidator func(c *Container) validator.Result

// Match returns a validator that requires target to equal source, e.g.
// Match("senha", "confirmaSenha").
//
// A mismatch attaches KindMismatch to target only. An empty target is left to
// its own required rule and counts as valid. When the values agree any stale
// KindMismatch is removed from target; other markers on target are kept.
// The validator does not observe changes: the host re-runs it on each pass.
func Match(source, target string) GroupValidator {
	return func(c *Container) validator.Result {
		want, got := c.Value(source), c.Value(target)
		if got == "" || got == want {
			c.RemoveError(target, validator.KindMismatch)
			return nil
		}
		c.AddError(target, validator.KindMismatch)
		return validator.Invalid(validator.KindMismatch)
	}
}
