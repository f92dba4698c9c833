package datastruct

import (
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

type Option[T any] option.Option[Config[T]]

type Config[T any] struct {
	// Equal is used to compare elements during value based lookups and bulk membership checks.
	// When nil, elements are compared deeply with reflectkit.Equal.
	Equal func(a, b T) bool
}

func (c Config[T]) Configure(t *Config[T]) {
	t.Equal = zerokit.Coalesce(c.Equal, t.Equal)
}

// WithEqual sets the equality function the ArrayList uses to match elements.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.Equal = equal
	})
}

func (c Config[T]) equal(a, b T) bool {
	if c.Equal != nil {
		return c.Equal(a, b)
	}
	return reflectkit.Equal(a, b)
}
