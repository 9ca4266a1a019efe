package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationSetOrderAndDedup(t *testing.T) {
	proj := Project{ID: "app", SourceLocale: "en-US"}

	ts := NewTranslationSet()
	assert.Equal(t, 0, ts.Size())

	a := proj.NewString("Hello", "Hello")
	b := proj.NewString("Goodbye", "Goodbye")
	ts.Add(a)
	ts.Add(b)

	all := ts.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "Hello", all[0].Key)
	assert.Equal(t, "Goodbye", all[1].Key)

	// A duplicate key overwrites the record but keeps its position.
	a2 := proj.NewString("Hello", "Hello")
	a2.Comment = "greeting"
	ts.Add(a2)

	assert.Equal(t, 2, ts.Size())
	all = ts.All()
	assert.Equal(t, "Hello", all[0].Key)
	assert.Equal(t, "greeting", all[0].Comment)
}

func TestTranslationSetAddAll(t *testing.T) {
	proj := Project{ID: "app", SourceLocale: "en-US"}

	ts := NewTranslationSet()
	ts.Add(proj.NewString("One", "One"))

	other := NewTranslationSet()
	other.Add(proj.NewString("Two", "Two"))
	other.Add(proj.NewString("Three", "Three"))

	ts.AddAll(other)
	ts.AddAll(nil)

	all := ts.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "One", all[0].Key)
	assert.Equal(t, "Two", all[1].Key)
	assert.Equal(t, "Three", all[2].Key)
}

func TestProjectNewString(t *testing.T) {
	proj := Project{ID: "myproject", SourceLocale: "en-US"}
	r := proj.NewString("Save", "Save")

	assert.Equal(t, TypeString, r.Type)
	assert.Equal(t, "myproject", r.Project)
	assert.Equal(t, "en-US", r.SourceLocale)
	assert.Equal(t, StateNew, r.State)
	assert.True(t, r.AutoKey)
}
