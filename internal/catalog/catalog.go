// Package catalog holds the fixed push/pull/legs dumbbell program.
package catalog

import (
	"fmt"

	"github.com/deniableproductions-arch/dumbbell-tracker-pwa/internal/models"
)

// Template IDs of the default program.
const (
	Push = "push"
	Pull = "pull"
	Legs = "legs"
)

// Catalog is an immutable set of workout templates.
type Catalog struct {
	templates []models.WorkoutTemplate
	byID      map[string]int
	exercises map[string]models.Exercise
}

// New builds a catalog from templates. Template IDs must be unique, and
// exercise IDs must be unique across the whole catalog.
func New(templates ...models.WorkoutTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]models.WorkoutTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
		exercises: make(map[string]models.Exercise),
	}
	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q: empty id", t.Title)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		for _, e := range t.Exercises {
			if e.ID == "" {
				return nil, fmt.Errorf("template %q: exercise %q has empty id", t.ID, e.Name)
			}
			if _, dup := c.exercises[e.ID]; dup {
				return nil, fmt.Errorf("template %q: duplicate exercise id %q", t.ID, e.ID)
			}
			if e.DefaultSets < 0 {
				return nil, fmt.Errorf("template %q: exercise %q has negative default sets", t.ID, e.ID)
			}
			c.exercises[e.ID] = e
		}
		t.Exercises = append([]models.Exercise(nil), t.Exercises...)
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// Templates returns the templates in catalog order.
func (c *Catalog) Templates() []models.WorkoutTemplate {
	out := make([]models.WorkoutTemplate, len(c.templates))
	for i, t := range c.templates {
		out[i] = t
		out[i].Exercises = append([]models.Exercise(nil), t.Exercises...)
	}
	return out
}

// Lookup returns the template with the given ID.
func (c *Catalog) Lookup(id string) (models.WorkoutTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.WorkoutTemplate{}, false
	}
	t := c.templates[i]
	t.Exercises = append([]models.Exercise(nil), t.Exercises...)
	return t, true
}

// MustLookup is Lookup for IDs that are known to exist. A miss means the
// caller skipped validation, so it panics.
func (c *Catalog) MustLookup(id string) models.WorkoutTemplate {
	t, ok := c.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown template %q", id))
	}
	return t
}

// Exercise returns the exercise with the given ID from any template.
func (c *Catalog) Exercise(id string) (models.Exercise, bool) {
	e, ok := c.exercises[id]
	return e, ok
}
