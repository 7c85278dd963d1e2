package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault_IsValid(t *testing.T) {
	p, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "Arien Khardiya", p.Profile.Name)
	assert.Equal(t, []string{"AI", "Web", "Mobile"}, p.ProjectCategories)
	assert.Len(t, p.Testimonials, 4)
	assert.Len(t, p.Skills, 6)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "folio.yml", `
profile: {name: Grace}
project_categories: [Web]
projects: [{id: 1, title: Site, category: Web}]
testimonials: [{id: 1, name: Ada, text: hi, rating: 4}]
`)

	p, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.Profile.Name)
	assert.Equal(t, 4, p.Testimonials[0].Rating)
}

func TestLoad_DirMergesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10-profile.yml", "profile: {name: Grace, email: g@example.com}\n")
	writeFile(t, dir, "20-projects.yaml", "project_categories: [AI]\nprojects: [{id: 1, title: Bot, category: AI}]\n")
	writeFile(t, dir, "30-testimonials.yml", "testimonials: [{id: 1, name: A}, {id: 2, name: B}]\n")
	writeFile(t, dir, "40-more.yml", "testimonials: [{id: 3, name: C}]\nprofile: {email: grace@example.com}\n")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "empty.yml", "")

	p, err := Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "Grace", p.Profile.Name)
	assert.Equal(t, "grace@example.com", p.Profile.Email)
	var names []string
	for _, tm := range p.Testimonials {
		names = append(names, tm.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestLoad_InvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yml", "profile: {name: X}\nprojects: [{id: 1, title: P, category: Nope}]\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `category "Nope"`)
	assert.Contains(t, err.Error(), "testimonials")
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "typo.yml", "profle: {name: X}\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DirParseErrorStopsAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", "profile: {name: X}\n")
	writeFile(t, dir, "b.yml", "profile: [not, a, map]\n")

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.yml")
}
