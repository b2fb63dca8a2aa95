package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMarkdownListItems(t *testing.T) {
	src := []byte(`# Prompt library

- Summarize the following text in two sentences
- Translate the input to French
- Explain this code to a beginner
`)
	got := FromMarkdown(src)
	assert.Equal(t, []string{
		"Summarize the following text in two sentences",
		"Translate the input to French",
		"Explain this code to a beginner",
	}, got)
}

func TestFromMarkdownParagraphsAndCode(t *testing.T) {
	src := []byte("Intro paragraph used as a prompt.\n\n```\nYou are a terse assistant.\nAnswer in one line.\n```\n")
	got := FromMarkdown(src)
	require.Len(t, got, 2)
	assert.Equal(t, "Intro paragraph used as a prompt.", got[0])
	assert.Contains(t, got[1], "terse assistant")
}

func TestFromMarkdownSkipsHeadingsAndBlanks(t *testing.T) {
	src := []byte("# Only headings\n\n## here\n")
	assert.Empty(t, FromMarkdown(src))
}

func TestFromMarkdownSoftWrappedParagraph(t *testing.T) {
	src := []byte("A prompt that\nwraps across lines\n")
	got := FromMarkdown(src)
	require.Len(t, got, 1)
	assert.Equal(t, "A prompt that wraps across lines", got[0])
}

func TestFromFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")
	require.NoError(t, os.WriteFile(path, []byte("first prompt\n\n  second prompt  \n"), 0o644))

	got, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first prompt", "second prompt"}, got)
}

func TestFromFileMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.md")
	require.NoError(t, os.WriteFile(path, []byte("- one\n- two\n"), 0o644))

	got, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}
