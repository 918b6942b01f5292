package dom

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootClasses(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	root := doc.Root()

	root.AddClass("light-theme")
	root.AddClass("app")
	root.AddClass("light-theme")
	root.AddClass("")

	assert.Equal(t, []string{"light-theme", "app"}, doc.Classes())
	assert.True(t, root.HasClass("app"))

	root.RemoveClass("light-theme")
	root.RemoveClass("missing")
	assert.Equal(t, "app", doc.ClassAttr())
	assert.False(t, root.HasClass("light-theme"))
}

func TestRootProperties(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	root := doc.Root()

	root.SetProperty("--color-bg", "#FFFFFF")
	root.SetProperty("--color-text", "#111827")
	root.SetProperty("--color-bg", "#0F1115")

	v, ok := root.Property("--color-bg")
	require.True(t, ok)
	assert.Equal(t, "#0F1115", v)

	_, ok = root.Property("--missing")
	assert.False(t, ok)

	assert.Equal(t, []Property{
		{Name: "--color-bg", Value: "#0F1115"},
		{Name: "--color-text", Value: "#111827"},
	}, doc.Properties())
	assert.Equal(t, "--color-bg: #0F1115; --color-text: #111827", doc.StyleAttr())
	assert.Equal(t, ":root {\n  --color-bg: #0F1115;\n  --color-text: #111827;\n}\n", doc.CSS(":root"))
}

func TestRootZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var root Root
	root.SetProperty("--a", "1")
	v, ok := root.Property("--a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestRootConcurrentAccess(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("--v%d", i%5)
			doc.SetProperty(name, fmt.Sprint(i))
			doc.AddClass(fmt.Sprintf("c%d", i%3))
			_ = doc.StyleAttr()
		}(i)
	}
	wg.Wait()

	assert.Len(t, doc.Properties(), 5)
	assert.Len(t, doc.Classes(), 3)
}
