package identifier

import "github.com/google/uuid"

// Generator entrega el sender_id: siempre el mismo identificador durante la vida del proceso.
type Generator struct {
	id string
}

// New genera un identificador aleatorio (UUID v4).
func New() *Generator {
	return &Generator{id: uuid.NewString()}
}

// Static usa un identificador ya configurado. Si viene vacío se genera uno.
func Static(id string) *Generator {
	if id == "" {
		return New()
	}
	return &Generator{id: id}
}

func (g *Generator) Identifier() string {
	return g.id
}
